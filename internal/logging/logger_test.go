package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name    string
		level   Level
		format  Format
		wantErr bool
	}{
		{"debug structured", LevelDebug, FormatStructured, false},
		{"info console", LevelInfo, FormatConsole, false},
		{"defaults", "", "", false},
		{"bad level", Level("verbose"), FormatStructured, true},
		{"bad format", LevelInfo, Format("xml"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.level, tc.format)
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, l)
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	l, err := New(LevelWarn, FormatStructured)
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}
