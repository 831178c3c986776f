package vm

import "github.com/aeldan/cubescript/internal/cube"

// Cube-interpreter opcodes, decoded from SumFace(U) of the current
// cube at commit time, per spec.md 4.4.
const (
	opNOP = 0
	opPSH = 1
	opPOP = 2
	opSTI = 3
	opSMS = 4
	opSSM = 5
	opRET = 6
)

// Event reports one completed group commit, for callers (the HTTP
// trace endpoint) that want to observe execution as it happens rather
// than only the final Result.
type Event struct {
	Opcode        uint8
	StackDepth    int
	MemoryPointer int
}

// commitGroup runs the cube interpreter against the current/immediate
// pair accumulated since the last commit, then advances the memory
// pointer unconditionally, NOP included, per spec.md 9.5.
func (vm *VM) commitGroup() error {
	opcode := vm.current.SumFace(cube.U)

	switch opcode {
	case opNOP:
		// no-op

	case opPSH:
		if vm.StackPointer >= StackCapacity-1 {
			return ErrStackOverflow
		}
		vm.StackPointer++
		vm.Stack[vm.StackPointer] = vm.immediate

	case opPOP:
		if vm.StackPointer == 0 {
			return ErrStackUnderflow
		}
		vm.Stack[vm.StackPointer] = cube.Cube{}
		vm.StackPointer--

	case opSTI:
		if vm.MemoryPointer >= MemoryCapacity {
			return ErrMemoryOverflow
		}
		vm.Memory[vm.MemoryPointer] = vm.immediate

	case opSMS, opSSM:
		if vm.MemoryPointer >= MemoryCapacity {
			return ErrMemoryOverflow
		}
		vm.Stack[vm.StackPointer], vm.Memory[vm.MemoryPointer] =
			vm.Memory[vm.MemoryPointer], vm.Stack[vm.StackPointer]

	case opRET:
		if vm.returnDepth == 0 {
			return ErrReturnUnderflow
		}
		vm.returnDepth--
		vm.PC = vm.returnStack[vm.returnDepth]

	default:
		// unrecognised opcode: no-op.
	}

	vm.MemoryPointer++
	if vm.OnCommit != nil {
		vm.OnCommit(Event{Opcode: opcode, StackDepth: vm.StackPointer, MemoryPointer: vm.MemoryPointer})
	}
	return nil
}
