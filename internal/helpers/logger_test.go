package helpers

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("gateway", &buf, false)

	logger.Info("started", "addr", ":8080")
	logger.Warn("slow request")
	logger.Error("encrypt failed", errors.New("boom"))
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "[gateway] INFO: started [addr :8080]")
	assert.Contains(t, out, "[gateway] WARN: slow request")
	assert.Contains(t, out, "[gateway] ERROR: encrypt failed - boom")
	assert.NotContains(t, out, "hidden")
}

func TestLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("cli", &buf, true)

	logger.Debug("subkey", 1)

	assert.Contains(t, buf.String(), "[cli] DEBUG: subkey [1]")
}
