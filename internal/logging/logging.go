// Package logging configures the process-wide logrus logger.
//
// The terminal belongs to the UI while the program runs, so log output goes to
// a file (pixels.log next to the config file) instead of stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// FileName is the default log file name
const FileName = "pixels.log"

var (
	std = logrus.New()

	mu      sync.Mutex
	current *os.File // file opened by the last Setup
)

func init() {
	std.SetOutput(io.Discard)
	std.SetLevel(logrus.InfoLevel)
	std.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
}

// Logger returns the shared logger
func Logger() *logrus.Logger {
	return std
}

// Component returns an entry tagged with the component name
func Component(name string) *logrus.Entry {
	return std.WithField("component", name)
}

// Setup points the logger at path and applies level. It returns a closer for the file.
// Calling it again moves the output to the new file and closes the previous one.
func Setup(path, level string) (io.Closer, error) {
	SetLevel(level)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	prev := current
	current = f
	std.SetOutput(f)
	mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	return f, nil
}

// SetOutput redirects log output, mainly for tests
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// SetLevel parses level and applies it; unknown values fall back to info
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	std.SetLevel(lvl)
}
