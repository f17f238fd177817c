package emulator

import (
	"errors"

	"github.com/ezrec/advent/translate"
)

var f = translate.From

var (
	ErrNoProgram = errors.New(f("no program loaded"))
	ErrStepLimit = errors.New(f("step limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip   uint64
	Tick int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d tick %d %v", err.Ip, err.Tick, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
