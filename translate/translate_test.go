package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLocales("en-US")
	defer SetLocales()

	assert.Equal("opcode 5 at 12", From("opcode %d at %d", 5, 12))
	assert.Equal("plain", From("plain"))
}

func TestSetLocalesReset(t *testing.T) {
	assert := assert.New(t)

	SetLocales("en-US")
	assert.NotNil(printer)

	SetLocales()
	assert.Nil(printer)

	// Detection rebuilds the printer on demand.
	assert.Equal("x", From("x"))
	assert.NotNil(printer)
}
