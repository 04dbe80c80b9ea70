package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// logFilePrefix and logFileExt bound which files in a log directory the
// retention sweep is allowed to touch.
const (
	logFilePrefix = "deskman-"
	logFileExt    = ".log"
)

// FileSink is a command-log destination resolved from configuration.
// Depending on the output spec it is a real file, stderr, or a discard
// sink; Writer never returns nil.
type FileSink struct {
	// Path is the log file path, empty for stderr and discard sinks.
	Path string

	w io.Writer
	f *os.File
}

// OpenFileSink resolves output into a writable sink rooted at dir.
//
//	""      per-run file dir/deskman-<timestamp>.log
//	"-"     stderr
//	"none"  discard
//	other   that path, relative paths resolved against dir
func OpenFileSink(dir, output string) (*FileSink, error) {
	switch strings.ToLower(output) {
	case "none":
		return &FileSink{w: io.Discard}, nil
	case "-":
		return &FileSink{w: os.Stderr}, nil
	}

	path := output
	if path == "" {
		path = runLogName(time.Now().UTC())
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	return &FileSink{Path: path, w: f, f: f}, nil
}

// Writer returns the sink's destination writer.
func (s *FileSink) Writer() io.Writer { return s.w }

// Close releases the underlying file, if any.
func (s *FileSink) Close() error {
	if s.f == nil {
		return nil
	}
	return s.f.Close()
}

// runLogName derives a per-run log filename from t, millisecond
// granularity so concurrent invocations do not collide.
func runLogName(t time.Time) string {
	return fmt.Sprintf("%s%s-%03d%s", logFilePrefix, t.Format("20060102-150405"), t.Nanosecond()/1e6, logFileExt)
}

// SweepLogDir deletes per-run log files in dir older than maxAge.
// Only files named by runLogName are candidates; anything else in the
// directory is left alone. A missing directory is not an error.
func SweepLogDir(dir string, maxAge time.Duration) error {
	if maxAge <= 0 {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, logFilePrefix+"*"+logFileExt))
	if err != nil {
		return err
	}
	cutoff := time.Now().Add(-maxAge)
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(path)
		}
	}
	return nil
}
