// Package challenge maps puzzle names to their solvers.
package challenge

import (
	"errors"
	"maps"
	"slices"

	"github.com/ezrec/advent/translate"
)

var f = translate.From

var (
	ErrChallengeMissing = errors.New(f("challenge missing"))
	ErrPartMissing      = errors.New(f("part missing"))
)

// ErrChallenge names the challenge that failed.
type ErrChallenge struct {
	Name string
	Err  error
}

func (err *ErrChallenge) Error() string {
	return f("challenge %v: %v", err.Name, err.Err)
}

func (err *ErrChallenge) Unwrap() error {
	return err.Err
}

// ErrPart is a request for a part a challenge does not have.
type ErrPart string

func (err ErrPart) Error() string {
	return f("no part %v available", string(err))
}

func (err ErrPart) Unwrap() error {
	return ErrPartMissing
}

// Challenge solves the parts of one puzzle.
type Challenge interface {
	// Run solves a part, returning its answer.
	Run(part string) (answer string, err error)
}

// Constructor builds a fresh Challenge.
type Constructor func() Challenge

// Registry is a set of named challenges.
type Registry struct {
	challenge map[string]Constructor
}

// Register adds, or replaces, a named challenge.
func (reg *Registry) Register(name string, create Constructor) {
	if reg.challenge == nil {
		reg.challenge = map[string]Constructor{name: create}
	} else {
		reg.challenge[name] = create
	}
}

// Names returns the sorted names of all registered challenges.
func (reg *Registry) Names() []string {
	return slices.Sorted(maps.Keys(reg.challenge))
}

// Run a part of a named challenge.
func (reg *Registry) Run(name string, part string) (answer string, err error) {
	defer func() {
		if err != nil {
			err = &ErrChallenge{Name: name, Err: err}
		}
	}()

	create, ok := reg.challenge[name]
	if !ok {
		err = ErrChallengeMissing
		return
	}

	answer, err = create().Run(part)
	return
}
