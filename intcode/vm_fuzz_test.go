package intcode

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// FUZZ_TICKS bounds a fuzzed run, since programs may loop forever.
const FUZZ_TICKS = 1024

func FuzzVm(f *testing.F) {
	f.Add([]byte{1, 0, 0, 0, 99}, uint8(0), uint8(0))
	f.Add([]byte{2, 4, 4, 5, 99, 0}, uint8(4), uint8(4))
	f.Add([]byte{1, 1, 1, 4, 99, 5, 6, 0, 99}, uint8(1), uint8(1))
	f.Add([]byte{}, uint8(0), uint8(0))
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 2, 0, 0, 0}, uint8(0), uint8(0))

	f.Fuzz(func(t *testing.T, data []byte, noun uint8, verb uint8) {
		assert := assert.New(t)

		// Byte sized cells keep most addresses in range. Inputs of 4
		// modulo 8 bytes lead with one full width value.
		var values []uint64
		if len(data) >= 12 && len(data)%8 == 4 {
			values = append(values, binary.LittleEndian.Uint64(data[:8]))
			data = data[8:]
		}
		for _, b := range data {
			values = append(values, uint64(b))
		}

		mem := NewMemory(values...)
		_ = mem.Write(1, uint64(noun))
		_ = mem.Write(2, uint64(verb))

		vm := NewVm(mem)
		for range FUZZ_TICKS {
			before := vm.Ip
			inst, next, derr := Decode(vm.Memory, vm.Ip)

			done, err := vm.Tick()
			assert.Equal(mem.Len(), uint64(len(values)), "memory length is fixed")

			if done {
				if err == nil {
					assert.NoError(derr)
					assert.Equal(OP_STOP, inst.Op)
					assert.Equal(STATE_HALTED, vm.State)
					break
				}
				assert.Equal(STATE_FAULTED, vm.State)
				assert.Equal(err, vm.Err)

				var oob *ErrOutOfBounds
				var uerr *ErrUnknownOpcode
				var oerr *ErrOverflow
				assert.True(errors.As(err, &oob) || errors.As(err, &uerr) || errors.As(err, &oerr), err)
				break
			}

			assert.NoError(derr)
			assert.NoError(err)
			assert.Equal(next, vm.Ip)
			assert.Equal(before+4, vm.Ip)
		}
	})
}
