package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitVerboseEnablesDebug(t *testing.T) {
	Init(true, false)
	require.NotNil(t, L())
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))
}

func TestInitDefaultLevelIsInfo(t *testing.T) {
	Init(false, true)
	require.NotNil(t, L())
	assert.False(t, L().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, L().Core().Enabled(zapcore.InfoLevel))
}
