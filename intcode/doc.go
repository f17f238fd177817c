// Package intcode implements a small stored-program virtual machine.
//
// A program is a flat memory of unsigned integers, loaded from comma
// separated decimal text. The VM decodes the opcode at the instruction
// pointer, applies it to memory, and advances until a Stop opcode halts
// it or an error faults it.
//
// The instruction set:
//
//	1  add src1 src2 dst   ; mem[dst] = mem[src1] + mem[src2]
//	2  mul src1 src2 dst   ; mem[dst] = mem[src1] * mem[src2]
//	99 stop
//
// Operands are addresses, not values. Results that do not fit in 64 bits
// fault with ErrOverflow.
package intcode
