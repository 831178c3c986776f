// Package token lexes cubescript source lines into the tagged token
// stream the code generator walks. The vocabulary is fixed by the
// language definition: 18 face moves, 9 whole-cube rotations, 9 slice
// moves, labels, punctuation, comments, and the SOF/EOF brackets.
package token

import "strings"

// Kind tags a Token's variant. JumpLabel and ConditionalLabel are the
// only payload-bearing kinds; every other kind is a bare marker.
type Kind int

const (
	SOF Kind = iota
	EOF
	Newline
	Semicolon
	Comma
	Asterisk
	JumpLabel
	ConditionalLabel
	Unused // sentinel returned by Opposite for non-invertible tokens

	MoveU
	MoveUPrime
	MoveU2
	MoveF
	MoveFPrime
	MoveF2
	MoveR
	MoveRPrime
	MoveR2
	MoveB
	MoveBPrime
	MoveB2
	MoveL
	MoveLPrime
	MoveL2
	MoveD
	MoveDPrime
	MoveD2

	RotX
	RotXPrime
	RotX2
	RotY
	RotYPrime
	RotY2
	RotZ
	RotZPrime
	RotZ2

	SliceM
	SliceMPrime
	SliceM2
	SliceS
	SliceSPrime
	SliceS2
	SliceE
	SliceEPrime
	SliceE2
)

// Token is a single lexed unit. Name is only meaningful for
// JumpLabel/ConditionalLabel.
type Token struct {
	Kind Kind
	Name string
}

func (t Token) String() string {
	switch t.Kind {
	case JumpLabel:
		return ":" + t.Name
	case ConditionalLabel:
		return "=" + t.Name
	default:
		if s, ok := kindSpelling[t.Kind]; ok {
			return s
		}
		return "<tok>"
	}
}

// kindSpelling gives the canonical (preferred) spelling for every
// payload-free token kind, used for round-trip serialisation.
var kindSpelling = map[Kind]string{
	Semicolon: ";", Comma: ",", Asterisk: "*", Newline: "\n",
	MoveU: "U", MoveUPrime: "U'", MoveU2: "U2",
	MoveF: "F", MoveFPrime: "F'", MoveF2: "F2",
	MoveR: "R", MoveRPrime: "R'", MoveR2: "R2",
	MoveB: "B", MoveBPrime: "B'", MoveB2: "B2",
	MoveL: "L", MoveLPrime: "L'", MoveL2: "L2",
	MoveD: "D", MoveDPrime: "D'", MoveD2: "D2",
	RotX: "X", RotXPrime: "X'", RotX2: "X2",
	RotY: "Y", RotYPrime: "Y'", RotY2: "Y2",
	RotZ: "Z", RotZPrime: "Z'", RotZ2: "Z2",
	SliceM: "M", SliceMPrime: "M'", SliceM2: "M2",
	SliceS: "S", SliceSPrime: "S'", SliceS2: "S2",
	SliceE: "E", SliceEPrime: "E'", SliceE2: "E2",
}

// literalKind maps every recognised spelling of a move/punctuation
// token to its Kind. Face and rotation tokens admit three spellings:
// the bare letter, the letter plus "'" or "p" for the prime, and the
// letter plus "2" for the double.
var literalKind = map[string]Kind{
	"U": MoveU, "U'": MoveUPrime, "Up": MoveUPrime, "U2": MoveU2,
	"F": MoveF, "F'": MoveFPrime, "Fp": MoveFPrime, "F2": MoveF2,
	"R": MoveR, "R'": MoveRPrime, "Rp": MoveRPrime, "R2": MoveR2,
	"B": MoveB, "B'": MoveBPrime, "Bp": MoveBPrime, "B2": MoveB2,
	"L": MoveL, "L'": MoveLPrime, "Lp": MoveLPrime, "L2": MoveL2,
	"D": MoveD, "D'": MoveDPrime, "Dp": MoveDPrime, "D2": MoveD2,

	"X": RotX, "X'": RotXPrime, "Xp": RotXPrime, "X2": RotX2,
	"Y": RotY, "Y'": RotYPrime, "Yp": RotYPrime, "Y2": RotY2,
	"Z": RotZ, "Z'": RotZPrime, "Zp": RotZPrime, "Z2": RotZ2,

	"M": SliceM, "M'": SliceMPrime, "Mp": SliceMPrime, "M2": SliceM2,
	"S": SliceS, "S'": SliceSPrime, "Sp": SliceSPrime, "S2": SliceS2,
	"E": SliceE, "E'": SliceEPrime, "Ep": SliceEPrime, "E2": SliceE2,

	"*": Asterisk, ";": Semicolon, ",": Comma,
}

// oppositeKind pairs every invertible kind with its algebraic inverse:
// prime variants swap, doubles map to themselves.
var oppositeKind = map[Kind]Kind{
	MoveU: MoveUPrime, MoveUPrime: MoveU, MoveU2: MoveU2,
	MoveF: MoveFPrime, MoveFPrime: MoveF, MoveF2: MoveF2,
	MoveR: MoveRPrime, MoveRPrime: MoveR, MoveR2: MoveR2,
	MoveB: MoveBPrime, MoveBPrime: MoveB, MoveB2: MoveB2,
	MoveL: MoveLPrime, MoveLPrime: MoveL, MoveL2: MoveL2,
	MoveD: MoveDPrime, MoveDPrime: MoveD, MoveD2: MoveD2,

	RotX: RotXPrime, RotXPrime: RotX, RotX2: RotX2,
	RotY: RotYPrime, RotYPrime: RotY, RotY2: RotY2,
	RotZ: RotZPrime, RotZPrime: RotZ, RotZ2: RotZ2,

	SliceM: SliceMPrime, SliceMPrime: SliceM, SliceM2: SliceM2,
	SliceS: SliceSPrime, SliceSPrime: SliceS, SliceS2: SliceS2,
	SliceE: SliceEPrime, SliceEPrime: SliceE, SliceE2: SliceE2,
}

// Opposite returns t's algebraic inverse, or a Token of Kind Unused
// (which never matches any real token) if t has none.
func Opposite(t Token) Token {
	if k, ok := oppositeKind[t.Kind]; ok {
		return Token{Kind: k}
	}
	return Token{Kind: Unused}
}

// Lex converts source lines into a token stream bracketed by SOF and
// EOF. Tokens within a line are separated by single ASCII spaces. A
// part beginning with ":" or "=" lexes exclusively as a label token
// (never also matched against the move table, resolving the ambiguity
// spec.md 9 flags as an open question). "//" ends a line early,
// discarding the remaining parts; unrecognised parts are silently
// skipped. Every line, including the last, is followed by a Newline
// marker so the code generator can recognise line starts.
func Lex(lines []string) []Token {
	tokens := []Token{{Kind: SOF}}

	for _, line := range lines {
		for _, part := range strings.Split(line, " ") {
			if part == "//" {
				break
			}
			if strings.HasPrefix(part, ":") {
				tokens = append(tokens, Token{Kind: JumpLabel, Name: strings.ReplaceAll(part, ":", "")})
				continue
			}
			if strings.HasPrefix(part, "=") {
				tokens = append(tokens, Token{Kind: ConditionalLabel, Name: strings.ReplaceAll(part, "=", "")})
				continue
			}
			if kind, ok := literalKind[part]; ok {
				tokens = append(tokens, Token{Kind: kind})
			}
			// unrecognised parts (including the empty string produced by
			// repeated spaces) are silently ignored.
		}
		tokens = append(tokens, Token{Kind: Newline})
	}

	tokens = append(tokens, Token{Kind: EOF})
	return tokens
}
