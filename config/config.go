// Package config handles advent.toml run configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/advent/gravity"
)

const FILENAME = "advent.toml"

var ErrNegative = errors.New("negative value")

// Config represents an advent.toml run configuration.
type Config struct {
	Inputs  string  `toml:"inputs"`
	Limit   int     `toml:"limit"`
	Verbose bool    `toml:"verbose"`
	Gravity Gravity `toml:"gravity"`

	// Dir is the directory containing the advent.toml file (set at load time).
	Dir string `toml:"-"`
}

// Gravity configures the gravity assist challenge.
type Gravity struct {
	Noun    *int64 `toml:"noun"`
	Verb    *int64 `toml:"verb"`
	Goal    string `toml:"goal"`
	Answer  string `toml:"answer"`
	MaxNoun *int64 `toml:"max-noun"`
	MaxVerb *int64 `toml:"max-verb"`
}

// check rejects negative addresses and bounds.
func (g *Gravity) check() error {
	for _, field := range []struct {
		key   string
		value *int64
	}{
		{"noun", g.Noun},
		{"verb", g.Verb},
		{"max-noun", g.MaxNoun},
		{"max-verb", g.MaxVerb},
	} {
		if field.value != nil && *field.value < 0 {
			return fmt.Errorf("gravity.%s = %d: %w", field.key, *field.value, ErrNegative)
		}
	}
	return nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Inputs: "inputs",
	}
}

// Load parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if err := c.Gravity.check(); err != nil {
		return nil, fmt.Errorf("invalid setting in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	// Relative input directories are relative to the file.
	if len(c.Inputs) == 0 {
		c.Inputs = "inputs"
	}
	if !filepath.IsAbs(c.Inputs) {
		c.Inputs = filepath.Join(c.Dir, c.Inputs)
	}

	return c, nil
}

// LoadDir loads advent.toml from dir, or returns the default
// configuration when the file does not exist.
func LoadDir(dir string) (*Config, error) {
	c, err := Load(filepath.Join(dir, FILENAME))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}

// Apply copies the gravity settings onto a challenge. Settings are
// expected to have passed Load.
func (c *Config) Apply(grav *gravity.Gravity) {
	grav.Verbose = grav.Verbose || c.Verbose
	grav.Limit = c.Limit
	if grav.Search == nil {
		grav.Search = gravity.NewSearch()
	}

	g := c.Gravity
	if g.Noun != nil {
		grav.Noun = uint64(*g.Noun)
	}
	if g.Verb != nil {
		grav.Verb = uint64(*g.Verb)
	}
	if len(g.Goal) > 0 {
		grav.Search.Goal = g.Goal
	}
	if len(g.Answer) > 0 {
		grav.Search.Answer = g.Answer
	}
	if g.MaxNoun != nil {
		grav.Search.MaxNoun = uint64(*g.MaxNoun)
	}
	if g.MaxVerb != nil {
		grav.Search.MaxVerb = uint64(*g.MaxVerb)
	}
}
