package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSerialLogStripsTrailingNuls(t *testing.T) {
	log := append([]byte("Test OK\n"), make([]byte, 4)...)
	assert.Equal(t, "Test OK\n", FormatSerialLog(log))
}

func TestFormatSerialLogEmpty(t *testing.T) {
	assert.Equal(t, "", FormatSerialLog(nil))
}
