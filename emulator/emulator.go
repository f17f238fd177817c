// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/advent/intcode"
)

// Emulator runs a Vm under a tick budget.
type Emulator struct {
	Verbose     bool // If set, enables verbose logging.
	Limit       int  // Maximum ticks per run, 0 for no limit.
	*intcode.Vm      // Reference to the running Vm.

	Ticks int // Ticks since the last reset.
}

// NewEmulator creates a new emulator with a tick limit.
func NewEmulator(limit int) (emu *Emulator) {
	emu = &Emulator{
		Limit: limit,
	}

	return
}

// Reset the emulator to run a fresh Vm over mem.
func (emu *Emulator) Reset(mem *intcode.Memory) {
	emu.Vm = intcode.NewVm(mem)
	emu.Vm.Verbose = emu.Verbose
	emu.Ticks = 0

	if emu.Verbose {
		log.Printf("emulator: reset, %d cells", mem.Len())
	}
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Vm == nil {
		return true, ErrNoProgram
	}

	// Set Vm verbosity
	emu.Vm.Verbose = emu.Verbose

	ip := emu.Vm.Ip
	tick := emu.Ticks
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Tick: tick, Err: err}
		}
	}()

	if emu.Vm.Done() {
		return true, emu.Vm.Err
	}

	if emu.Limit > 0 && emu.Ticks >= emu.Limit {
		return true, ErrStepLimit
	}

	emu.Ticks++
	done, err = emu.Vm.Tick()
	return
}

// Run ticks until the Vm halts, faults, or exceeds the tick limit,
// and returns the value at address 0.
func (emu *Emulator) Run() (result uint64, err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	result, err = emu.Vm.Result()
	if emu.Verbose {
		log.Printf("emulator: %d ticks, result %d", emu.Ticks, result)
	}

	return
}
