// Package codegen lowers a cubescript token stream into the flat
// bytecode word stream the virtual machine executes: it expands slice
// moves into primitive triples, performs a single-window adjacent
// cancellation, resolves labels to absolute offsets, and tracks line
// numbers for diagnostics.
package codegen

import (
	"fmt"

	"github.com/aeldan/cubescript/internal/lang/token"
)

// Bytecode word values, per spec.md 3.
const (
	WordSOF       uint16 = 0x00B0
	WordAsterisk  uint16 = 27
	WordComma     uint16 = 0x002C
	WordSemicolon uint16 = 0x003B
	WordJump      uint16 = 0x003A
	WordCondJump  uint16 = 0x003D
)

// Program is the compiled bytecode: a sequence of 16-bit words, word 0
// always WordSOF.
type Program struct {
	Words []uint16
}

// primitiveOpcode gives the 0-26 opcode for each of the 18 face twists
// and 9 whole-cube rotations, in the order fixed by spec.md 3.
var primitiveOpcode = map[token.Kind]uint16{
	token.MoveU: 0, token.MoveUPrime: 1, token.MoveU2: 2,
	token.MoveF: 3, token.MoveFPrime: 4, token.MoveF2: 5,
	token.MoveR: 6, token.MoveRPrime: 7, token.MoveR2: 8,
	token.MoveB: 9, token.MoveBPrime: 10, token.MoveB2: 11,
	token.MoveL: 12, token.MoveLPrime: 13, token.MoveL2: 14,
	token.MoveD: 15, token.MoveDPrime: 16, token.MoveD2: 17,

	token.RotX: 18, token.RotXPrime: 19, token.RotX2: 20,
	token.RotY: 21, token.RotYPrime: 22, token.RotY2: 23,
	token.RotZ: 24, token.RotZPrime: 25, token.RotZ2: 26,
}

// sliceExpansion gives the fixed three-word expansion for each slice
// move, per spec.md 4.3.
var sliceExpansion = map[token.Kind][3]uint16{
	token.SliceM:      {13, 6, 18},
	token.SliceMPrime: {12, 7, 19},
	token.SliceM2:     {14, 8, 20},
	token.SliceS:      {3, 10, 25},
	token.SliceSPrime: {4, 9, 24},
	token.SliceS2:     {5, 11, 26},
	token.SliceE:      {0, 16, 22},
	token.SliceEPrime: {1, 15, 21},
	token.SliceE2:     {2, 17, 23},
}

// UndefinedLabelError reports a label that was referenced but never
// defined by end of stream.
type UndefinedLabelError struct {
	Name string
	Line int
}

func (e *UndefinedLabelError) Error() string {
	return fmt.Sprintf("codegen: undefined label %q referenced on line %d", e.Name, e.Line)
}

// labelState tracks, for one label name, its bound offset (if any)
// and the buffer positions of any references still awaiting one.
type labelState struct {
	bound     bool
	offset    int
	fixups    []int
	firstLine int
}

// Generate lowers tokens (as produced by token.Lex) into a Program.
//
// Any occurrence of an already-bound label name is a reference, even at
// the start of a line. An unbound name at the start of a line (the
// immediately preceding token is SOF or Newline) is a definition. An
// occurrence of an
// unbound name that is not at the start of a line is treated as a
// forward reference and queued as a fix-up rather than erroring
// immediately — see SPEC_FULL.md 9.3 for the rationale.
func Generate(tokens []token.Token) (Program, error) {
	buf := []uint16{WordSOF}
	line := 1
	labels := map[string]*labelState{}

	stateFor := func(name string) *labelState {
		st, ok := labels[name]
		if !ok {
			st = &labelState{}
			labels[name] = st
		}
		return st
	}

	last := len(tokens) - 1 // index of EOF; the pass never processes it
	for i := 1; i < last; i++ {
		tok := tokens[i]

		if tok.Kind == token.Newline {
			line++
		}

		if cancelled(tokens, i) {
			continue
		}

		switch tok.Kind {
		case token.SOF, token.Newline, token.Unused:
			// no emission

		case token.Asterisk:
			buf = append(buf, WordAsterisk)

		case token.Semicolon:
			buf = append(buf, WordSemicolon)

		case token.Comma:
			buf = append(buf, WordComma)

		case token.JumpLabel, token.ConditionalLabel:
			jumpWord := WordJump
			if tok.Kind == token.ConditionalLabel {
				jumpWord = WordCondJump
			}
			st := stateFor(tok.Name)
			switch {
			case st.bound:
				buf = append(buf, jumpWord, uint16(st.offset-1))
			case tokens[i-1].Kind == token.SOF || tokens[i-1].Kind == token.Newline:
				st.bound = true
				st.offset = len(buf)
				for _, pos := range st.fixups {
					buf[pos] = uint16(st.offset - 1)
				}
				st.fixups = nil
			default:
				if len(st.fixups) == 0 {
					st.firstLine = line
				}
				buf = append(buf, jumpWord, 0)
				st.fixups = append(st.fixups, len(buf)-1)
			}

		default:
			if op, ok := primitiveOpcode[tok.Kind]; ok {
				buf = append(buf, op)
			} else if expansion, ok := sliceExpansion[tok.Kind]; ok {
				buf = append(buf, expansion[0], expansion[1], expansion[2])
			}
		}
	}

	for name, st := range labels {
		if len(st.fixups) > 0 {
			return Program{}, &UndefinedLabelError{Name: name, Line: st.firstLine}
		}
	}

	return Program{Words: buf}, nil
}

// cancelled reports whether tokens[i] is cancelled by an adjacent
// algebraic inverse: tokens[i+1] or tokens[i-1] equal to the opposite
// of tokens[i]. This is a single-window peephole evaluated against
// the original token stream, not iterated to a fixpoint, per
// spec.md 4.3.
func cancelled(tokens []token.Token, i int) bool {
	opp := token.Opposite(tokens[i])
	if opp.Kind == token.Unused {
		return false
	}
	if tokens[i+1] == opp {
		return true
	}
	if tokens[i-1] == opp {
		return true
	}
	return false
}
