package intcode

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Load parses program text into memory.
//
// Each line is a comma separated list of unsigned decimal integers. All lines
// are concatenated, in order, into one memory. Empty input is an empty
// memory. Lines have no length limit.
func Load(input io.Reader) (mem *Memory, err error) {
	reader := bufio.NewReader(input)

	mem = &Memory{}

	var lineno int
	for {
		var text string
		text, err = reader.ReadString('\n')
		if err != nil && err != io.EOF {
			mem = nil
			return
		}
		eof := err == io.EOF
		err = nil

		// A final newline does not start another record.
		if eof && len(text) == 0 {
			break
		}
		lineno++

		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")

		column := 1
		for _, token := range strings.Split(text, ",") {
			var value uint64
			value, err = strconv.ParseUint(token, 10, 64)
			if err != nil {
				mem = nil
				err = &ErrParse{Line: lineno, Column: column, Token: token, Err: ErrNumber}
				return
			}
			mem.Data = append(mem.Data, value)
			column += len(token) + 1
		}

		if eof {
			break
		}
	}

	return
}

// LoadString parses program text from a string.
func LoadString(text string) (mem *Memory, err error) {
	return Load(strings.NewReader(text))
}
