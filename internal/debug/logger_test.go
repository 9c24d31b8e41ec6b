package debug

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerDisabledDiscards(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Init(false)
	t.Cleanup(func() {
		Init(false)
		SetOutput(os.Stderr)
	})

	Debug("hidden", "k", 1)
	Error("also hidden")

	assert.False(t, Enabled())
	assert.Empty(t, buf.String())
}

func TestLoggerEnabledWrites(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Init(true)
	t.Cleanup(func() {
		Init(false)
		SetOutput(os.Stderr)
	})

	Debug("filter compiled", "operator", "IN")
	With("component", "schema").Info("foreign key added")

	out := buf.String()
	assert.True(t, Enabled())
	assert.Contains(t, out, "filter compiled")
	assert.Contains(t, out, "operator=IN")
	assert.Contains(t, out, "component=schema")
}
