package logger

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestLogger_Log(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "log-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) // nolint:errcheck
	defer tmpFile.Close()           // nolint:errcheck

	logger := New(LevelInfo, tmpFile)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "fetched page",
			fields:  Fields{"url": "https://example.com"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false, // won't log (below INFO)
		},
		{
			name:    "warn message",
			level:   LevelWarn,
			message: "skipping cell",
			fields:  Fields{"reason": "bad_date"},
			want:    true,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "fetch failed",
			err:     errors.New("connection refused"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := tmpFile.Seek(0, 2) // Get current position

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			after, _ := tmpFile.Seek(0, 2) // Get new position
			logged := after > before

			if logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "log-json-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) // nolint:errcheck
	defer tmpFile.Close()           // nolint:errcheck

	logger := New(LevelInfo, tmpFile)
	logger.Warn("skipping cell", Fields{"reason": "no_date"})

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		t.Fatal(err)
	}

	var entry LogEntry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if entry.Level != "WARN" {
		t.Errorf("entry level = %q, expected WARN", entry.Level)
	}
	if entry.Message != "skipping cell" {
		t.Errorf("entry message = %q", entry.Message)
	}
	if entry.Fields["reason"] != "no_date" {
		t.Errorf("entry fields = %v", entry.Fields)
	}
	if entry.Timestamp == "" {
		t.Error("entry should carry a timestamp")
	}
}

func TestCounters(t *testing.T) {
	c := NewCounters()

	if c.Get("accepted") != 0 {
		t.Error("fresh counter should be zero")
	}

	c.Incr("accepted")
	c.Incr("accepted")
	c.Incr("bad_date")

	if got := c.Get("accepted"); got != 2 {
		t.Errorf("accepted = %d, expected 2", got)
	}
	if got := c.Get("bad_date"); got != 1 {
		t.Errorf("bad_date = %d, expected 1", got)
	}

	snap := c.Snapshot()
	if len(snap) != 2 || snap["accepted"] != 2 || snap["bad_date"] != 1 {
		t.Errorf("Snapshot() = %v", snap)
	}

	// Snapshot is a copy, not a view.
	snap["accepted"] = 99
	if c.Get("accepted") != 2 {
		t.Error("mutating a snapshot should not affect the counters")
	}
}
