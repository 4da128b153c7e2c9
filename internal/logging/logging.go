package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how the global logger writes.
type Options struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Verbose    bool
	Quiet      bool
}

// DefaultFile returns the default log file path.
func DefaultFile() string {
	return filepath.Join(os.TempDir(), "panes-cli", "app.log")
}

// Setup configures the global logrus logger. Logs go to a rotating file so
// the terminal UI is not disturbed. The returned closer releases the file.
func Setup(opts Options) io.Closer {
	logrus.SetLevel(ResolveLevel(opts.Level, opts.Verbose, opts.Quiet))

	file := opts.File
	if file == "" {
		file = DefaultFile()
	}

	var closer io.Closer = nopCloser{}
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		// Fallback to stderr if can't create log directory
		logrus.Warnf("Failed to create log directory %s: %v", filepath.Dir(file), err)
	} else {
		writer := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		logrus.SetOutput(writer)
		closer = writer
	}

	if opts.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: opts.Quiet,
			FullTimestamp:    opts.Verbose,
		})
	}
	return closer
}

// ResolveLevel picks the log level, letting verbose and quiet flags win over config.
func ResolveLevel(level string, verbose, quiet bool) logrus.Level {
	if verbose {
		level = "debug"
	} else if quiet {
		level = "error"
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %s, using info", level)
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
