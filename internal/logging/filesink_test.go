package logging

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestRunLogName(t *testing.T) {
	ts := time.Date(2026, 3, 14, 15, 9, 26, 535_000_000, time.UTC)
	got := runLogName(ts)
	want := "deskman-20260314-150926-535.log"
	if got != want {
		t.Errorf("runLogName() = %q, want %q", got, want)
	}
	pattern := regexp.MustCompile(`^deskman-\d{8}-\d{6}-\d{3}\.log$`)
	if !pattern.MatchString(runLogName(time.Now().UTC())) {
		t.Errorf("runLogName(now) does not match expected pattern")
	}
}

func TestOpenFileSink_Discard(t *testing.T) {
	sink, err := OpenFileSink(t.TempDir(), "none")
	if err != nil {
		t.Fatalf("OpenFileSink() error = %v", err)
	}
	defer sink.Close()
	if sink.Writer() != io.Discard {
		t.Errorf("expected discard writer")
	}
	if sink.Path != "" {
		t.Errorf("Path = %q, want empty", sink.Path)
	}
}

func TestOpenFileSink_Stderr(t *testing.T) {
	sink, err := OpenFileSink(t.TempDir(), "-")
	if err != nil {
		t.Fatalf("OpenFileSink() error = %v", err)
	}
	defer sink.Close()
	if sink.Writer() != os.Stderr {
		t.Errorf("expected stderr writer")
	}
}

func TestOpenFileSink_PerRunFile(t *testing.T) {
	dir := t.TempDir()
	sink, err := OpenFileSink(dir, "")
	if err != nil {
		t.Fatalf("OpenFileSink() error = %v", err)
	}
	defer sink.Close()
	if filepath.Dir(sink.Path) != dir {
		t.Errorf("Path = %q, want file under %q", sink.Path, dir)
	}
	if !strings.HasPrefix(filepath.Base(sink.Path), logFilePrefix) {
		t.Errorf("Path = %q, want %s prefix", sink.Path, logFilePrefix)
	}
	if _, err := sink.Writer().Write([]byte("line\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	data, err := os.ReadFile(sink.Path)
	if err != nil {
		t.Fatalf("reading sink file: %v", err)
	}
	if string(data) != "line\n" {
		t.Errorf("file content = %q, want %q", data, "line\n")
	}
}

func TestOpenFileSink_RelativePath(t *testing.T) {
	dir := t.TempDir()
	sink, err := OpenFileSink(dir, "run.log")
	if err != nil {
		t.Fatalf("OpenFileSink() error = %v", err)
	}
	defer sink.Close()
	if want := filepath.Join(dir, "run.log"); sink.Path != want {
		t.Errorf("Path = %q, want %q", sink.Path, want)
	}
}

func TestSweepLogDir(t *testing.T) {
	dir := t.TempDir()

	old := filepath.Join(dir, "deskman-20200101-000000-000.log")
	fresh := filepath.Join(dir, "deskman-20990101-000000-000.log")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, fresh, other} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatalf("writing %s: %v", p, err)
		}
	}
	stale := time.Now().AddDate(0, 0, -30)
	if err := os.Chtimes(old, stale, stale); err != nil {
		t.Fatalf("aging %s: %v", old, err)
	}

	if err := SweepLogDir(dir, 7*24*time.Hour); err != nil {
		t.Fatalf("SweepLogDir() error = %v", err)
	}

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Errorf("old log file not removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Errorf("fresh log file removed: %v", err)
	}
	if _, err := os.Stat(other); err != nil {
		t.Errorf("unrelated file removed: %v", err)
	}
}

func TestSweepLogDir_MissingDir(t *testing.T) {
	if err := SweepLogDir(filepath.Join(t.TempDir(), "absent"), time.Hour); err != nil {
		t.Errorf("SweepLogDir() on missing dir error = %v", err)
	}
}
