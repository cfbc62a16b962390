package logger_test

import (
	"testing"

	"hotel-desk/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "production", ""} {
		t.Run("should build logger for mode "+mode, func(t *testing.T) {
			l, err := logger.New(mode)

			require.NoError(t, err)
			require.NotNil(t, l)
			assert.NotNil(t, l.StdLog())
			l.With("mode", mode).Debug("built")
		})
	}
}

func TestNop(t *testing.T) {
	l := logger.Nop()

	assert.NotPanics(t, func() {
		l.Info("ignored", "k", "v")
		l.Warn("ignored")
		l.Error("ignored")
		l.Sync()
	})
}
