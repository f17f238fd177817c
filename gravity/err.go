package gravity

import (
	"errors"

	"github.com/ezrec/advent/translate"
)

var f = translate.From

var (
	ErrNoSolution = errors.New(f("no noun and verb reach the goal"))
	ErrExprType   = errors.New(f("wrong result type"))
)

// ErrExpression is a goal or answer expression that could not be evaluated.
type ErrExpression struct {
	Name string
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("%v $(%v) %v", err.Name, err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
