package intcode

import (
	"fmt"
	"log"
	"math/bits"
)

// State is the execution state of a Vm.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

// Vm is the execution context of a single program run.
type Vm struct {
	Verbose bool // Set to enable verbose logging.

	Memory *Memory // Memory owned by this run.
	Ip     uint64  // Address of the next opcode.
	State  State   // Current execution state.
	Err    error   // Fault, once State is STATE_FAULTED.
	Steps  int     // Instructions applied since creation.
}

// NewVm creates a running Vm over mem, with the instruction pointer at 0.
func NewVm(mem *Memory) (vm *Vm) {
	vm = &Vm{
		Memory: mem,
		State:  STATE_RUNNING,
	}

	return
}

// Done returns true once the Vm is halted or faulted.
func (vm *Vm) Done() bool {
	return vm.State != STATE_RUNNING
}

// String returns the Vm state as a string.
func (vm *Vm) String() (text string) {
	text = fmt.Sprintf("state: %v\n", vm.State)
	text += fmt.Sprintf("   ip: %d\n", vm.Ip)
	text += fmt.Sprintf("steps: %d\n", vm.Steps)
	if vm.Err != nil {
		text += fmt.Sprintf("fault: %v\n", vm.Err)
	}
	text += fmt.Sprintf("  mem: %v\n", vm.Memory)

	return
}

// fault moves the Vm to its terminal fault state.
func (vm *Vm) fault(err error) error {
	vm.State = STATE_FAULTED
	vm.Err = err

	if vm.Verbose {
		log.Printf("vm: fault at %d: %v", vm.Ip, err)
	}

	return err
}

// Tick performs a single transition of the Vm.
// Once halted or faulted, Tick does nothing and returns the terminal error
// again (nil when halted).
func (vm *Vm) Tick() (done bool, err error) {
	if vm.Done() {
		return true, vm.Err
	}

	inst, next, err := Decode(vm.Memory, vm.Ip)
	if err != nil {
		return true, vm.fault(err)
	}

	if vm.Verbose {
		log.Printf("%03d: %v", vm.Ip, inst)
	}

	if inst.Op == OP_STOP {
		vm.State = STATE_HALTED
		return true, nil
	}

	err = vm.Execute(inst)
	if err != nil {
		return true, vm.fault(err)
	}

	vm.Ip = next
	vm.Steps++

	return
}

// Execute applies a decoded Add or Mul instruction to memory.
func (vm *Vm) Execute(inst Instruction) (err error) {
	a, err := vm.Memory.Read(inst.Src1)
	if err != nil {
		return
	}

	b, err := vm.Memory.Read(inst.Src2)
	if err != nil {
		return
	}

	var result, carry uint64
	switch inst.Op {
	case OP_ADD:
		result, carry = bits.Add64(a, b, 0)
	case OP_MUL:
		carry, result = bits.Mul64(a, b)
	default:
		err = &ErrUnknownOpcode{Value: uint64(inst.Op), Position: vm.Ip}
		return
	}

	if carry != 0 {
		err = &ErrOverflow{Op: inst.Op, A: a, B: b, Position: vm.Ip}
		return
	}

	err = vm.Memory.Write(inst.Dst, result)
	return
}

// Run ticks until the Vm halts or faults.
// There is no instruction limit.
func (vm *Vm) Run() (err error) {
	for done := false; !done; {
		done, err = vm.Tick()
	}

	return
}

// Result returns the value at address 0 of a halted Vm.
func (vm *Vm) Result() (value uint64, err error) {
	switch vm.State {
	case STATE_HALTED:
		return vm.Memory.Read(0)
	case STATE_FAULTED:
		err = vm.Err
	default:
		err = ErrNotHalted
	}

	return
}
