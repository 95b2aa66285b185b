package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		dev   bool
		want  logrus.Level
	}{
		{"explicit", "warn", false, logrus.WarnLevel},
		{"upper case", "ERROR", false, logrus.ErrorLevel},
		{"development default", "", true, logrus.DebugLevel},
		{"production default", "", false, logrus.InfoLevel},
		{"invalid falls back", "chatty", false, logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := InitLogger(tt.level, tt.dev)
			assert.Equal(t, tt.want, log.GetLevel())
			assert.Same(t, log, GetLogger())
		})
	}
}

func TestInitLogger_Formatter(t *testing.T) {
	_, isJSON := InitLogger("info", false).Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)

	_, isText := InitLogger("info", true).Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)

	t.Setenv("LOG_FORMAT", "json")
	_, isJSON = InitLogger("info", true).Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}

func TestContextHelpers(t *testing.T) {
	log := InitLogger("debug", false)
	var buf bytes.Buffer
	log.SetOutput(&buf)

	WithService("cricket-api").Info("up")
	WithMatchContext("m-1", "running").Info("ball")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "cricket-api", entry["service"])

	require.NoError(t, json.Unmarshal(lines[1], &entry))
	assert.Equal(t, "m-1", entry["match_id"])
	assert.Equal(t, "running", entry["match_state"])
}
