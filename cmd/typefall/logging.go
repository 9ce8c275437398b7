package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "typefall.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens the log file under dir and returns a logger writing to it
// The terminal owns stdout and stderr, so without debug every log is discarded and the file is nil
// A file larger than maxLogSize is renamed aside with a timestamp before a fresh one is opened
func setupLogging(debug bool, dir string, level zerolog.Level) (zerolog.Logger, *os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("typefall-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("rotate log file: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()

	// Route stray standard library logging into the same file
	log.SetFlags(0)
	log.SetOutput(logger)

	return logger, f, nil
}
