package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  zerolog.Level
	}{
		{"trace", "trace", zerolog.TraceLevel},
		{"debug", "debug", zerolog.DebugLevel},
		{"info", "info", zerolog.InfoLevel},
		{"warn", "warn", zerolog.WarnLevel},
		{"error", "error", zerolog.ErrorLevel},
		{"fatal", "fatal", zerolog.FatalLevel},
		{"mayúsculas", "DEBUG", zerolog.DebugLevel},
		{"espacios", "  warn  ", zerolog.WarnLevel},
		{"desconocido cae a info", "verbose", zerolog.InfoLevel},
		{"vacío cae a info", "", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseLevel(tc.input))
		})
	}
}

func TestNew_NivelConfigurado(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	require.NotNil(t, l)
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel(),
		"el nivel de Config debe llegar al logger subyacente")
}
