package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "Production", debug: false, wantDebug: false},
		{name: "Debug", debug: true, wantDebug: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			logger, err := New(tt.debug)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebug, logger.Core().Enabled(zap.DebugLevel))
			assert.True(t, logger.Core().Enabled(zap.InfoLevel))
		})
	}
}
