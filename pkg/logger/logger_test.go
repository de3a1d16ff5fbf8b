package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"fatal":   zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestInit_OnceUntilReset(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	var first, second bytes.Buffer
	Init(Options{Level: "debug", Output: &first})
	Init(Options{Level: "error", Output: &second})
	log := Get()
	log.Debug().Str("resource", "department").Msg("created")

	require.Empty(t, second.String())
	var line map[string]any
	require.NoError(t, json.Unmarshal(first.Bytes(), &line))
	assert.Equal(t, "department", line["resource"])
	assert.Equal(t, "debug", line["level"])
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	t.Cleanup(Reset)
	Reset()
	assert.Panics(t, func() { Get() })
}

func TestInit_WritesRotatedFile(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	path := filepath.Join(t.TempDir(), "logs", "hrm.log")
	var stdout bytes.Buffer
	Init(Options{Output: &stdout, File: path})
	log := Get()
	log.Info().Str("resource", "leave").Msg("created")

	matches, err := filepath.Glob(path + ".*")
	require.NoError(t, err)
	var files []string
	for _, m := range matches {
		if !strings.Contains(filepath.Base(m), "_") {
			files = append(files, m)
		}
	}
	require.Len(t, files, 1)
	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), `"resource":"leave"`)
	assert.Contains(t, stdout.String(), `"resource":"leave"`)
}

func TestInit_UnwritableFileFallsBackToOutput(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	var out bytes.Buffer
	Init(Options{Output: &out, File: filepath.Join(blocker, "logs", "hrm.log")})
	assert.Contains(t, out.String(), "log file disabled")

	log := Get()
	log.Info().Msg("still logging")
	assert.Contains(t, out.String(), "still logging")
}
