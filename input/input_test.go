package input

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestInputs_String(t *testing.T) {
	assert := assert.New(t)

	in := &Inputs{FS: fstest.MapFS{
		"two/one": &fstest.MapFile{Data: []byte("1,0,0,0,99\n")},
	}}

	text, err := in.String("two", "one")
	assert.NoError(err)
	assert.Equal("1,0,0,0,99\n", text)
}

func TestInputs_Missing(t *testing.T) {
	assert := assert.New(t)

	in := &Inputs{FS: fstest.MapFS{}}

	_, err := in.String("two", "one")
	assert.ErrorIs(err, fs.ErrNotExist)

	var ierr *ErrInput
	if assert.True(errors.As(err, &ierr)) {
		assert.Equal("two", ierr.Challenge)
		assert.Equal("one", ierr.Part)
	}
}

func TestInputs_Name(t *testing.T) {
	assert := assert.New(t)

	in := &Inputs{FS: fstest.MapFS{
		"secret": &fstest.MapFile{Data: []byte("x")},
	}}

	table := [](struct {
		challenge string
		part      string
	}){
		{"two", ".."},
		{"two", "../secret"},
		{"two", ""},
		{"/two", "one"},
		{"two", "one/two"},
	}

	for _, entry := range table {
		_, err := in.Open(entry.challenge, entry.part)
		assert.ErrorIs(err, ErrInputName, entry.challenge+"/"+entry.part)
	}
}

func TestDir(t *testing.T) {
	assert := assert.New(t)

	in := Dir(t.TempDir())
	assert.NotNil(in.FS)

	_, err := in.String("two", "one")
	assert.ErrorIs(err, fs.ErrNotExist)
}
