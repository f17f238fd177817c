package intcode

import (
	"errors"

	"github.com/ezrec/advent/translate"
)

var f = translate.From

var (
	// Vm errors
	ErrNotHalted = errors.New(f("vm not halted"))

	// Loader errors
	ErrNumber = errors.New(f("not an unsigned decimal integer"))
)

// ErrParse locates the first malformed token of a program text.
type ErrParse struct {
	Line   int    // 1-based line number.
	Column int    // 1-based byte column of the token start.
	Token  string // Offending token, verbatim.
	Err    error
}

func (err *ErrParse) Error() string {
	return f("line %d column %d '%v' %v", err.Line, err.Column, err.Token, err.Err)
}

func (err *ErrParse) Unwrap() error {
	return err.Err
}

// ErrUnknownOpcode is a decode of a value that is not an opcode.
type ErrUnknownOpcode struct {
	Value    uint64
	Position uint64
}

func (err *ErrUnknownOpcode) Error() string {
	return f("unknown opcode %d at position %d", err.Value, err.Position)
}

// ErrOutOfBounds is an access to the inclusive address range [Start, End]
// that is not entirely inside memory.
type ErrOutOfBounds struct {
	Start uint64
	End   uint64
}

func (err *ErrOutOfBounds) Error() string {
	if err.Start == err.End {
		return f("address %d out of bounds", err.Start)
	}
	return f("address range %d-%d out of bounds", err.Start, err.End)
}

// ErrOverflow is an arithmetic result that does not fit in a memory cell.
type ErrOverflow struct {
	Op       OpCode
	A        uint64
	B        uint64
	Position uint64
}

func (err *ErrOverflow) Error() string {
	return f("%v overflow of %d and %d at position %d", err.Op.String(), err.A, err.B, err.Position)
}
