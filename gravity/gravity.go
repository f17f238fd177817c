// Package gravity solves the gravity assist puzzle with the intcode VM.
//
// Part one restores the "1202 program alarm" state (noun 12, verb 2) and
// reports address 0. Part two searches for the noun and verb that produce
// a goal output.
package gravity

import (
	"strconv"

	"github.com/ezrec/advent/challenge"
	"github.com/ezrec/advent/emulator"
	"github.com/ezrec/advent/input"
	"github.com/ezrec/advent/intcode"
)

const (
	NAME = "two" // Registered challenge name.

	ALARM_NOUN = 12
	ALARM_VERB = 2
)

// Gravity is the gravity assist challenge.
type Gravity struct {
	Verbose bool          // If set, enables verbose logging.
	Inputs  *input.Inputs // Source of the program text.
	Noun    uint64        // Part one noun override.
	Verb    uint64        // Part one verb override.
	Limit   int           // Tick limit per run, 0 for none.
	Search  *Search       // Part two search.
}

var _ challenge.Challenge = (*Gravity)(nil)

// NewGravity creates the challenge with the alarm overrides and default search.
func NewGravity(inputs *input.Inputs) (grav *Gravity) {
	grav = &Gravity{
		Inputs: inputs,
		Noun:   ALARM_NOUN,
		Verb:   ALARM_VERB,
		Search: NewSearch(),
	}

	return
}

// load reads and parses the program for a part.
func (grav *Gravity) load(part string) (mem *intcode.Memory, err error) {
	text, err := grav.Inputs.String(NAME, part)
	if err != nil {
		return
	}

	mem, err = intcode.LoadString(text)
	return
}

// Run solves a part of the challenge.
func (grav *Gravity) Run(part string) (answer string, err error) {
	var value uint64

	switch part {
	case "one":
		var mem *intcode.Memory
		mem, err = grav.load(part)
		if err != nil {
			return
		}
		emu := emulator.NewEmulator(grav.Limit)
		emu.Verbose = grav.Verbose
		value, err = Alarm(mem, grav.Noun, grav.Verb, emu)
	case "two":
		var mem *intcode.Memory
		mem, err = grav.load(part)
		if err != nil {
			return
		}
		var search Search
		if grav.Search == nil {
			search = *NewSearch()
		} else {
			search = *grav.Search
		}
		search.Verbose = search.Verbose || grav.Verbose
		if search.Limit == 0 {
			search.Limit = grav.Limit
		}
		_, _, value, err = search.Solve(mem)
	default:
		err = challenge.ErrPart(part)
	}

	if err != nil {
		return
	}

	answer = strconv.FormatUint(value, 10)
	return
}
