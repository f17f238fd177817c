package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/advent/gravity"
	"github.com/ezrec/advent/input"
)

func writeConfig(t *testing.T, text string) string {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, FILENAME), []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := writeConfig(t, `
inputs = "puzzles"
limit = 1000
verbose = true

[gravity]
noun = 1
verb = 0
goal = "output == 42"
answer = "noun + verb"
max-noun = 9
max-verb = 19
`)

	c, err := LoadDir(dir)
	assert.NoError(err)

	abs, _ := filepath.Abs(dir)
	assert.Equal(abs, c.Dir)
	assert.Equal(filepath.Join(abs, "puzzles"), c.Inputs)
	assert.Equal(1000, c.Limit)
	assert.True(c.Verbose)
	assert.Equal(int64(1), *c.Gravity.Noun)
	assert.Equal(int64(0), *c.Gravity.Verb)
	assert.Equal("output == 42", c.Gravity.Goal)
	assert.Equal(int64(19), *c.Gravity.MaxVerb)

	grav := gravity.NewGravity(&input.Inputs{})
	c.Apply(grav)
	assert.True(grav.Verbose)
	assert.Equal(1000, grav.Limit)
	assert.Equal(uint64(1), grav.Noun)
	assert.Equal(uint64(0), grav.Verb)
	assert.Equal("output == 42", grav.Search.Goal)
	assert.Equal("noun + verb", grav.Search.Answer)
	assert.Equal(uint64(9), grav.Search.MaxNoun)
	assert.Equal(uint64(19), grav.Search.MaxVerb)
}

func TestLoad_Partial(t *testing.T) {
	assert := assert.New(t)

	dir := writeConfig(t, "limit = 5\n")

	c, err := LoadDir(dir)
	assert.NoError(err)
	assert.Equal(filepath.Join(c.Dir, "inputs"), c.Inputs)

	grav := gravity.NewGravity(&input.Inputs{})
	c.Apply(grav)
	assert.Equal(uint64(gravity.ALARM_NOUN), grav.Noun)
	assert.Equal(uint64(gravity.ALARM_VERB), grav.Verb)
	assert.Equal(gravity.DEFAULT_GOAL, grav.Search.Goal)
	assert.Equal(uint64(gravity.DEFAULT_MAX), grav.Search.MaxNoun)
	assert.Equal(5, grav.Limit)
}

func TestApply_NoSearch(t *testing.T) {
	assert := assert.New(t)

	dir := writeConfig(t, "[gravity]\nmax-verb = 7\n")
	c, err := LoadDir(dir)
	assert.NoError(err)

	grav := &gravity.Gravity{}
	c.Apply(grav)
	if assert.NotNil(grav.Search) {
		assert.Equal(gravity.DEFAULT_GOAL, grav.Search.Goal)
		assert.Equal(uint64(gravity.DEFAULT_MAX), grav.Search.MaxNoun)
		assert.Equal(uint64(7), grav.Search.MaxVerb)
	}
}

func TestLoadDir_Missing(t *testing.T) {
	assert := assert.New(t)

	c, err := LoadDir(t.TempDir())
	assert.NoError(err)
	assert.Equal(Default(), c)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	dir := writeConfig(t, "limit = \"many\"\n")
	_, err := LoadDir(dir)
	assert.ErrorContains(err, "parse error")

	table := [](struct {
		text string
		key  string
	}){
		{"[gravity]\nnoun = -1\n", "gravity.noun"},
		{"[gravity]\nverb = -3\n", "gravity.verb"},
		{"[gravity]\nmax-noun = -1\n", "gravity.max-noun"},
		{"[gravity]\nnoun = 4\nmax-verb = -2\n", "gravity.max-verb"},
	}

	for _, entry := range table {
		c, err := LoadDir(writeConfig(t, entry.text))
		assert.Nil(c, entry.key)
		assert.ErrorIs(err, ErrNegative, entry.key)
		assert.ErrorContains(err, entry.key, entry.key)
	}

	_, err = Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(err, os.ErrNotExist)
}
