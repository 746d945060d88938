// Package logging configures the process logger: human-readable console
// output plus a size-rotated log file under tmp/logs.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileName   = "devrev_mcp.log"
	maxLogSizeMB  = 10
	maxLogBackups = 5
)

// Setup builds the root logger. The level string follows zerolog's names
// (debug, info, warn, error); unknown levels fall back to info. When debug
// is set the level is forced to debug regardless.
//
// The MCP stdio transport owns stdout, so console output goes to stderr.
func Setup(level string, debug bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr}

	logDir := filepath.Join("tmp", "logs")
	sinks := []io.Writer{console}
	if err := os.MkdirAll(logDir, 0o755); err == nil {
		sinks = append(sinks, &lumberjack.Logger{
			Filename:   filepath.Join(logDir, logFileName),
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
		})
	}

	return zerolog.New(zerolog.MultiLevelWriter(sinks...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
