// Package vm implements the cubescript bytecode interpreter: a
// stack-and-memory machine whose opcodes are decoded from the twisted
// state of cube values rather than stored as instruction mnemonics.
package vm

import (
	"errors"
	"fmt"

	"github.com/aeldan/cubescript/internal/cube"
	"github.com/aeldan/cubescript/internal/lang/codegen"
)

// Fixed VM resource limits, per spec.md 3 and 5.
const (
	StackCapacity       = 128
	MemoryCapacity      = 8192
	ReturnStackCapacity = 1024
)

var (
	// ErrCorruptBytecode is returned when word 0 of a program is not
	// the SOF sentinel, or a jump/conditional-jump opcode has no
	// following target word.
	ErrCorruptBytecode = errors.New("vm: corrupt bytecode")
	// ErrStackOverflow is returned by a PSH against a full cube stack.
	ErrStackOverflow = errors.New("vm: cube stack overflow")
	// ErrStackUnderflow is returned by a POP against an empty cube stack.
	ErrStackUnderflow = errors.New("vm: pop from empty cube stack")
	// ErrReturnStackOverflow is returned when a jump would push past
	// the 1024-entry return stack.
	ErrReturnStackOverflow = errors.New("vm: return stack overflow")
	// ErrReturnUnderflow is returned by RET against an empty return stack.
	ErrReturnUnderflow = errors.New("vm: return from empty return stack")
	// ErrMemoryOverflow is returned by STI, SMS or SSM when the memory
	// pointer is past the last addressable cell. Advancing the pointer
	// after a commit never returns it.
	ErrMemoryOverflow = errors.New("vm: cube memory overflow")
)

// VM holds all interpreter state: the cube stack and its pointer, cube
// memory and its pointer, the return stack, the program counter, and
// the current/immediate working cubes.
type VM struct {
	Stack        [StackCapacity]cube.Cube
	StackPointer int

	Memory        [MemoryCapacity]cube.Cube
	MemoryPointer int

	returnStack [ReturnStackCapacity]int
	returnDepth int

	PC int

	current   cube.Cube
	immediate cube.Cube

	// OnCommit, if set, is invoked synchronously after every group
	// commit. Run never sets this itself; callers that want a live
	// execution trace (the HTTP trace endpoint) set it before calling
	// Run.
	OnCommit func(Event)
}

// New returns a VM with its memory pointer past the reserved null
// cell and both working cubes born solved.
func New() *VM {
	return &VM{
		MemoryPointer: 1,
		current:       cube.New(),
		immediate:     cube.New(),
	}
}

// Result summarises a completed run for callers (CLI, HTTP) that
// don't need to reach into VM internals.
type Result struct {
	StackDepth int
	MemoryUsed int
	Halted     bool
}

// Run executes program from word 1 (word 0 must be the SOF sentinel)
// until the program counter runs past the end of the bytecode.
func (vm *VM) Run(program codegen.Program) (Result, error) {
	words := program.Words
	if len(words) == 0 || words[0] != codegen.WordSOF {
		return Result{}, fmt.Errorf("%w: missing SOF sentinel", ErrCorruptBytecode)
	}

	vm.PC = 1
	for vm.PC < len(words) {
		word := words[vm.PC]

		switch {
		case word <= 26:
			vm.applyPrimitive(word)

		case word == codegen.WordSemicolon:
			if err := vm.commitGroup(); err != nil {
				return vm.result(), err
			}
			vm.current = cube.New()
			vm.immediate = cube.New()

		case word == codegen.WordComma:
			vm.immediate = vm.current
			vm.current = cube.New()

		case word == codegen.WordJump:
			target, err := vm.readTarget(words)
			if err != nil {
				return vm.result(), err
			}
			if err := vm.pushReturn(vm.PC); err != nil {
				return vm.result(), err
			}
			vm.PC = int(target)

		case word == codegen.WordCondJump:
			target, err := vm.readTarget(words)
			if err != nil {
				return vm.result(), err
			}
			if vm.Stack[vm.StackPointer].SumFace(cube.U) != 0 {
				if err := vm.pushReturn(vm.PC); err != nil {
					return vm.result(), err
				}
				vm.PC = int(target)
			}
			// condition false: fall through, having already consumed
			// the target word.

		default:
			// unrecognised word: no-op.
		}

		vm.PC++
	}

	return vm.result(), nil
}

func (vm *VM) result() Result {
	return Result{
		StackDepth: vm.StackPointer,
		MemoryUsed: vm.MemoryPointer - 1,
		Halted:     true,
	}
}

// readTarget advances past a jump/conditional-jump opcode word to
// consume its target word, returning it.
func (vm *VM) readTarget(words []uint16) (uint16, error) {
	vm.PC++
	if vm.PC >= len(words) {
		return 0, fmt.Errorf("%w: jump with no target word", ErrCorruptBytecode)
	}
	return words[vm.PC], nil
}

// pushReturn saves pc onto the return stack so a later RET resumes
// execution immediately after the jump that pushed it.
func (vm *VM) pushReturn(pc int) error {
	if vm.returnDepth >= ReturnStackCapacity {
		return ErrReturnStackOverflow
	}
	vm.returnStack[vm.returnDepth] = pc
	vm.returnDepth++
	return nil
}

// applyPrimitive dispatches bytecode words 0-26 to the corresponding
// face twist or whole-cube rotation on the current cube.
func (vm *VM) applyPrimitive(word uint16) {
	switch word {
	case 0:
		vm.current.TwistU()
	case 1:
		vm.current.TwistUPrime()
	case 2:
		vm.current.TwistU2()
	case 3:
		vm.current.TwistF()
	case 4:
		vm.current.TwistFPrime()
	case 5:
		vm.current.TwistF2()
	case 6:
		vm.current.TwistR()
	case 7:
		vm.current.TwistRPrime()
	case 8:
		vm.current.TwistR2()
	case 9:
		vm.current.TwistB()
	case 10:
		vm.current.TwistBPrime()
	case 11:
		vm.current.TwistB2()
	case 12:
		vm.current.TwistL()
	case 13:
		vm.current.TwistLPrime()
	case 14:
		vm.current.TwistL2()
	case 15:
		vm.current.TwistD()
	case 16:
		vm.current.TwistDPrime()
	case 17:
		vm.current.TwistD2()
	case 18:
		vm.current.RotateX()
	case 19:
		vm.current.RotateXPrime()
	case 20:
		vm.current.RotateX2()
	case 21:
		vm.current.RotateY()
	case 22:
		vm.current.RotateYPrime()
	case 23:
		vm.current.RotateY2()
	case 24:
		vm.current.RotateZ()
	case 25:
		vm.current.RotateZPrime()
	case 26:
		vm.current.RotateZ2()
	}
}
