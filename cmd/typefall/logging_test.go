package main

import (
	"bufio"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreStdLog(t *testing.T) {
	t.Helper()
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	restoreStdLog(t)
	dir := filepath.Join(t.TempDir(), "logs")

	logger, f, err := setupLogging(false, dir, zerolog.DebugLevel)
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
	assert.Equal(t, io.Discard, log.Writer())

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no directory is created without debug")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	restoreStdLog(t)
	dir := filepath.Join(t.TempDir(), "logs")

	logger, f, err := setupLogging(true, dir, zerolog.InfoLevel)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	logger.Info().Str("session", "abc").Msg("session started")
	logger.Debug().Msg("below level")
	log.Println("stdlib line")

	rf, err := os.Open(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	defer rf.Close()

	var lines []map[string]any
	sc := bufio.NewScanner(rf)
	for sc.Scan() {
		var m map[string]any
		if json.Unmarshal(sc.Bytes(), &m) == nil {
			lines = append(lines, m)
		}
	}
	require.Len(t, lines, 1, "debug entry filtered and stdlib line is not JSON")
	assert.Equal(t, "session started", lines[0]["message"])
	assert.Equal(t, "abc", lines[0]["session"])
	assert.Contains(t, lines[0], "time")
}

func TestSetupLogging_Rotation(t *testing.T) {
	restoreStdLog(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644))

	_, f, err := setupLogging(true, dir, zerolog.InfoLevel)
	require.NoError(t, err)
	defer f.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	assert.True(t, rotatedFound, "expected a rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}

func TestSetupLogging_BadDirectory(t *testing.T) {
	restoreStdLog(t)
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, f, err := setupLogging(true, filepath.Join(file, "logs"), zerolog.InfoLevel)
	assert.Error(t, err)
	assert.Nil(t, f)
}
