// Package skiplog records rejected input files in a durable plain-text log.
package skiplog

import (
	"fmt"
	"log"
	"os"
	"time"
)

// timeLayout is the second-precision local timestamp prefixing each entry
const timeLayout = "2006-01-02 15:04:05"

// Logger appends one human-readable line per rejected file to a shared log
// file. The file is opened, written and synced per call so every entry is on
// disk before Log returns; the batch may be killed at any point and the log
// must still account for everything rejected so far.
type Logger struct {
	path string
}

// New creates a logger writing to the given path. The file is created on
// first use; its parent directory must already exist.
func New(path string) *Logger {
	return &Logger{path: path}
}

// Path returns the log file location
func (l *Logger) Path() string {
	return l.path
}

// Log appends "[YYYY-MM-DD HH:MM:SS] <filename> - <reason>" to the log and
// echoes the skip to the console. An error indicates a filesystem failure
// and should be treated as fatal by the caller.
func (l *Logger) Log(filename, reason string) error {
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open skip log: %w", err)
	}
	defer file.Close()

	line := fmt.Sprintf("[%s] %s - %s\n", time.Now().Format(timeLayout), filename, reason)
	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("write skip log: %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("sync skip log: %w", err)
	}

	log.Printf("  SKIPPED & LOGGED: %s -> %s", filename, reason)
	return nil
}
