package logs

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestChildLoggerForSource(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := zerolog.New(buf)

	child := ChildLoggerForSource(logger, "observe")
	child.Info().Msg("hello")

	assert.Equal(t, `{"lvl":"info","src":"observe","msg":"hello"}`+"\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	if assert.NoError(t, err) {
		assert.Equal(t, zerolog.InfoLevel, level)
	}

	level, err = ParseLevel("debug")
	if assert.NoError(t, err) {
		assert.Equal(t, zerolog.DebugLevel, level)
	}

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
