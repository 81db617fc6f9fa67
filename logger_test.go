package libemit

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWriterLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf).WithField("b", 2).WithField("a", 1)

	logger.Infof("hello %s", "world")
	logger.Warnln("careful")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "INFO [a=1, b=2]: hello world")
	assert.Contains(t, string(lines[1]), "WARN [a=1, b=2]: careful")
}

func TestWriterLoggerWithFieldDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewWriterLogger(&buf)
	_ = base.WithField("k", "v")

	base.Error("plain")

	assert.Contains(t, buf.String(), "ERROR: plain")
	assert.NotContains(t, buf.String(), "k=v")
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf).Level(zerolog.InfoLevel)).
		WithField("event", "greet")

	logger.Debug("hidden")
	logger.Infoln("visible", 1)
	logger.Errorf("failed: %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"level":"info","event":"greet","message":"visible 1"`)
	assert.Contains(t, out, `"level":"error","event":"greet","message":"failed: 2"`)
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()

	assert.NotPanics(t, func() {
		logger.WithField("a", 1).Errorf("nothing %d", 1)
	})
}
