package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/phuslu/log"
)

// NewLogger builds the diagnostic logger from the logging settings.
// Unknown levels fall back to info.
func NewLogger(cfg LoggingConfig) *log.Logger {
	logger := &log.Logger{
		Level:      log.ParseLevel(cfg.Level),
		TimeFormat: "15:04:05",
	}

	var writers []log.Writer
	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		writers = append(writers, &log.FileWriter{
			Filename:   cfg.File,
			MaxSize:    10 * 1024 * 1024,
			MaxBackups: 3,
			LocalTime:  true,
		})
	}
	if cfg.Console || cfg.File == "" {
		writers = append(writers, &log.ConsoleWriter{
			ColorOutput: log.IsTerminal(os.Stderr.Fd()),
			Writer:      os.Stderr,
		})
	}

	if len(writers) == 1 {
		logger.Writer = writers[0]
	} else {
		multi := &log.MultiEntryWriter{}
		*multi = append(*multi, writers...)
		logger.Writer = multi
	}
	return logger
}

// NopLogger returns a logger that discards everything. Tests and headless
// runs that do not want diagnostics use it.
func NopLogger() *log.Logger {
	return &log.Logger{Level: log.PanicLevel, Writer: &log.IOWriter{Writer: io.Discard}}
}
