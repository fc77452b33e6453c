//go:build !integration

package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		pretty    bool
		wantLevel zerolog.Level
	}{
		{
			name:      "trace level",
			level:     "trace",
			wantLevel: zerolog.TraceLevel,
		},
		{
			name:      "debug level",
			level:     "debug",
			wantLevel: zerolog.DebugLevel,
		},
		{
			name:      "info level",
			level:     "info",
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "warn level",
			level:     "warn",
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "error level",
			level:     "error",
			wantLevel: zerolog.ErrorLevel,
		},
		{
			name:      "unknown level defaults to info",
			level:     "verbose",
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "pretty output",
			level:     "info",
			pretty:    true,
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			assert.NotNil(t, Logger())
		})
	}
}

func TestInit_TagsServiceName(t *testing.T) {
	Init("info", false)

	var buf bytes.Buffer
	l := Logger().Output(&buf)
	l.Info().Msg("calculation complete")

	assert.Contains(t, buf.String(), `"service":"slitting-service"`)
	assert.Contains(t, buf.String(), "calculation complete")
}

func TestWithContext(t *testing.T) {
	Init("info", false)

	tests := []struct {
		name   string
		fields map[string]interface{}
	}{
		{
			name:   "empty fields",
			fields: map[string]interface{}{},
		},
		{
			name: "single field",
			fields: map[string]interface{}{
				"material_id": "BOPP-30",
			},
		},
		{
			name: "multiple fields",
			fields: map[string]interface{}{
				"material_id":   "BOPP-30",
				"pattern_count": 7,
				"cache_hit":     true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := WithContext(tt.fields).Output(&buf)
			l.Info().Msg("ok")

			for k := range tt.fields {
				assert.Contains(t, buf.String(), k)
			}
		})
	}
}
