// Package input locates puzzle input text.
//
// Inputs are stored one file per part, as <challenge>/<part>, under a root
// file system.
package input

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/ezrec/advent/translate"
)

var f = translate.From

var (
	ErrInputName = errors.New(f("invalid input name"))
)

// ErrInput names the input file that could not be read.
type ErrInput struct {
	Challenge string
	Part      string
	Err       error
}

func (err *ErrInput) Error() string {
	return f("input %v for part %v of challenge %v: %v",
		path.Join(err.Challenge, err.Part), err.Part, err.Challenge, err.Err)
}

func (err *ErrInput) Unwrap() error {
	return err.Err
}

// Inputs is a tree of puzzle inputs.
type Inputs struct {
	FS fs.FS
}

// Dir returns the inputs rooted at a host directory.
func Dir(dir string) *Inputs {
	return &Inputs{FS: os.DirFS(dir)}
}

// Open the input of a challenge part.
func (in *Inputs) Open(challenge, part string) (file fs.File, err error) {
	name := path.Join(challenge, part)
	if !fs.ValidPath(name) || path.Dir(name) != challenge {
		err = &ErrInput{Challenge: challenge, Part: part, Err: ErrInputName}
		return
	}

	file, err = in.FS.Open(name)
	if err != nil {
		err = &ErrInput{Challenge: challenge, Part: part, Err: err}
	}

	return
}

// String reads the whole input of a challenge part.
func (in *Inputs) String(challenge, part string) (text string, err error) {
	file, err := in.Open(challenge, part)
	if err != nil {
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		err = &ErrInput{Challenge: challenge, Part: part, Err: err}
		return
	}

	text = string(data)
	return
}
