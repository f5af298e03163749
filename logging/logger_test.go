package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []Entry {
	t.Helper()
	var out []Entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		out = append(out, e)
	}
	return out
}

func TestLoggerFiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("server", WARN, &buf)

	logger.Debug(CategoryGeneral, "debug", nil)
	logger.Info(CategoryGeneral, "info", nil)
	logger.Warn(CategoryHTTP, "warn", map[string]any{"path": "/"})
	logger.Error(CategoryRelay, "boom", errors.New("relay down"), nil)

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Level != "WARN" || entries[0].Component != "server" || entries[0].Fields["path"] != "/" {
		t.Fatalf("unexpected warn entry %+v", entries[0])
	}
	if entries[1].Level != "ERROR" || entries[1].Error != "relay down" || entries[1].Category != CategoryRelay {
		t.Fatalf("unexpected error entry %+v", entries[1])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DEBUG,
		" Warn ":  WARN,
		"warning": WARN,
		"ERROR":   ERROR,
		"fatal":   FATAL,
		"":        INFO,
		"verbose": INFO,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestLogContextCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := New("test", DEBUG, &buf)

	logger.WithRequestID("req-1").
		WithCategory(CategoryContact).
		WithField("email", "a@b.co").
		WithFields(map[string]any{"attempt": 2}).
		Error("send failed", errors.New("timeout"))

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	e := entries[0]
	if e.RequestID != "req-1" || e.Category != CategoryContact || e.Error != "timeout" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if e.Fields["email"] != "a@b.co" || e.Fields["attempt"] != float64(2) {
		t.Fatalf("unexpected fields %+v", e.Fields)
	}
}

func TestNilAndDiscardLoggersAreSafe(t *testing.T) {
	var nilLogger *Logger
	nilLogger.Info(CategoryGeneral, "ignored", nil)
	nilLogger.Error(CategoryGeneral, "ignored", errors.New("x"), nil)
	Discard().Error(CategoryGeneral, "ignored", nil, nil)
}

func TestFileWriterAndReadRecent(t *testing.T) {
	dir := t.TempDir()
	fw, err := NewFileWriter(dir, "site.log", 0, 3)
	if err != nil {
		t.Fatalf("new file writer: %v", err)
	}
	logger := New("test", DEBUG, fw)
	for i := 0; i < 5; i++ {
		logger.Info(CategoryGeneral, "line", map[string]any{"n": i})
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := fw.Write([]byte("late\n")); err == nil {
		t.Fatalf("expected write after close to fail")
	}

	entries, err := ReadRecent(fw.Path(), 2)
	if err != nil {
		t.Fatalf("read recent: %v", err)
	}
	if len(entries) != 2 || entries[0].Fields["n"] != float64(3) || entries[1].Fields["n"] != float64(4) {
		t.Fatalf("unexpected tail %+v", entries)
	}

	missing, err := ReadRecent(filepath.Join(dir, "nope.log"), 10)
	if err != nil || len(missing) != 0 {
		t.Fatalf("missing file should yield no entries, got %v %v", missing, err)
	}
}

func TestFileWriterRotatesOnSize(t *testing.T) {
	dir := t.TempDir()
	fw, err := NewFileWriter(dir, "site.log", 1, 5)
	if err != nil {
		t.Fatalf("new file writer: %v", err)
	}
	defer fw.Close()

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	if _, err := fw.Write(chunk); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := fw.Write(chunk); err != nil {
		t.Fatalf("second write: %v", err)
	}

	fw.mu.Lock()
	size := fw.currentSize
	fw.mu.Unlock()
	if size != int64(len(chunk)) {
		t.Fatalf("expected live file to hold one chunk after rotation, got %d bytes", size)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		matches, _ := filepath.Glob(filepath.Join(dir, "site.log.*"))
		if len(matches) == 1 && strings.HasSuffix(matches[0], ".gz") {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("rotated file was not compressed: %v", matches)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
