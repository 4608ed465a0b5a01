package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("SESSION-MANAGER", ColorCyan, &buf)
	logger.Printf("%s started", InfoTag)

	out := buf.String()
	assert.Contains(t, out, ColorCyan+"[SESSION-MANAGER]"+ColorReset)
	assert.Contains(t, out, "[INFO]"+LogColorReset+" started")
}
