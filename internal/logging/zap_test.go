package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	log := NewZapLogger(&buf, slog.LevelInfo)
	ctx := context.Background()

	log.Debug(ctx, "hidden", "a", 1)
	log.With("request_id", "r1").Warn(ctx, "slow", "ms", 1200)
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug must be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "slow", entry["msg"])
	assert.Equal(t, "r1", entry["request_id"])
	assert.EqualValues(t, 1200, entry["ms"])
}

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format  string
		level   string
		want    string
		wantErr bool
	}{
		{format: FormatText, level: "debug", want: "level=INFO"},
		{format: FormatJSON, level: "info", want: `"level":"INFO"`},
		{format: FormatZap, level: "info", want: `"level":"info"`},
		{format: "xml", level: "info", wantErr: true},
		{format: FormatText, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(tt.format, tt.level, &buf)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			log.Info(context.Background(), "hello")
			if z, ok := log.(*ZapLogger); ok {
				_ = z.Sync()
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	log.Error(context.Background(), "nothing to see")
	log.With("k", "v").Info(context.Background(), "still nothing")
}
