package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	prev, lvl := Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		Logger = prev
		zerolog.SetGlobalLevel(lvl)
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(DebugLevel))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(WarnLevel))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(ErrorLevel))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestInitJSON(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	Init(Config{Level: InfoLevel, JSONOutput: true, Output: &buf})

	l := WithComponent("feed")
	l.Debug().Msg("hidden")
	l.Info().Str("user_id", "u1").Msg("message sent")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "feed", entry["component"])
	assert.Equal(t, "message sent", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestInitConsole(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	Init(Config{Level: DebugLevel, Output: &buf})
	l := WithRequestID("r-1")
	l.Debug().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "r-1")
}

func TestWithUserID(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	Init(Config{Level: InfoLevel, JSONOutput: true, Output: &buf})
	l := WithUserID("u-7")
	l.Info().Msg("user created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "u-7", entry["user_id"])
}
