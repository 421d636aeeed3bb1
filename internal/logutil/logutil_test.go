package logutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	logger, err := New("debug", "json")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = New("warn", "console")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", "json")
	assert.Error(t, err)
}

func TestNew_InvalidFormat(t *testing.T) {
	_, err := New("info", "xml")
	assert.Error(t, err)
}
