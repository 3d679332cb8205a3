// SPDX-License-Identifier: MIT

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/wordwheel/config"
	"github.com/katalvlaran/wordwheel/logging"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		level string
		want  zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			l, err := logging.New(config.Logging{Level: tc.level})
			require.NoError(t, err)
			assert.Equal(t, tc.want, l.Level())
		})
	}
}

func TestNew_Development(t *testing.T) {
	l, err := logging.New(config.Logging{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(config.Logging{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}
