package intcode

import (
	"fmt"
)

// OpCode is the tag stored in the first cell of an instruction.
type OpCode int

//go:generate go tool stringer -linecomment -type=OpCode
const (
	OP_ADD  = OpCode(1)  // add
	OP_MUL  = OpCode(2)  // mul
	OP_STOP = OpCode(99) // stop
)

// Width returns the number of memory cells used by the opcode and its operands.
func (op OpCode) Width() uint64 {
	switch op {
	case OP_ADD, OP_MUL:
		return 4
	default:
		return 1
	}
}

// Instruction is a decoded opcode and its operand addresses.
// Operands are unused for OP_STOP.
type Instruction struct {
	Op   OpCode
	Src1 uint64
	Src2 uint64
	Dst  uint64
}

// Width returns the number of memory cells the instruction occupies.
func (inst Instruction) Width() uint64 {
	return inst.Op.Width()
}

// String returns the instruction in a readable form.
func (inst Instruction) String() string {
	if inst.Op == OP_STOP {
		return inst.Op.String()
	}

	return fmt.Sprintf("%v [%d] [%d] -> [%d]", inst.Op.String(), inst.Src1, inst.Src2, inst.Dst)
}

// Decode the instruction at ip.
// The next pointer is ip plus the instruction width, whether or not the
// instruction is later applied.
func Decode(mem *Memory, ip uint64) (inst Instruction, next uint64, err error) {
	value, err := mem.Read(ip)
	if err != nil {
		return
	}

	switch value {
	case uint64(OP_STOP):
		inst = Instruction{Op: OP_STOP}
	case uint64(OP_ADD), uint64(OP_MUL):
		var operands []uint64
		operands, err = mem.ReadRange(ip+1, ip+3)
		if err != nil {
			return
		}
		inst = Instruction{
			Op:   OpCode(value),
			Src1: operands[0],
			Src2: operands[1],
			Dst:  operands[2],
		}
	default:
		err = &ErrUnknownOpcode{Value: value, Position: ip}
		return
	}

	next = ip + inst.Width()
	return
}
