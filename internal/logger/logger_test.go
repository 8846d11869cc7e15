package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func withBuffer(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	std.now = func() time.Time { return time.Date(2026, 10, 18, 10, 30, 45, 0, time.UTC) }
	t.Cleanup(func() {
		SetOutput(nil)
		SetLevel(LevelWarn)
		std.now = time.Now
	})
	return &buf
}

func TestInit(t *testing.T) {
	Init(true)
	if GetLevel() != LevelDebug {
		t.Errorf("Init(true) should set LevelDebug, got %v", GetLevel())
	}
	Init(false)
	if GetLevel() != LevelWarn {
		t.Errorf("Init(false) should set LevelWarn, got %v", GetLevel())
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		level      Level
		logFunc    func(string, ...interface{})
		shouldShow bool
	}{
		{"debug at debug", LevelDebug, Debug, true},
		{"info at debug", LevelDebug, Info, true},
		{"debug at warn", LevelWarn, Debug, false},
		{"info at warn", LevelWarn, Info, false},
		{"warn at warn", LevelWarn, Warn, true},
		{"error at warn", LevelWarn, Error, true},
		{"warn at error", LevelError, Warn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := withBuffer(t, tt.level)
			tt.logFunc("hello %s", "world")
			if got := strings.Contains(buf.String(), "hello world"); got != tt.shouldShow {
				t.Errorf("shown = %v, want %v (output %q)", got, tt.shouldShow, buf.String())
			}
		})
	}
}

func TestFormat(t *testing.T) {
	buf := withBuffer(t, LevelDebug)
	Warn("disk %d%% full", 90)
	want := "[WARN] 2026-10-18 10:30:45 disk 90% full\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestDebugFields_SortedKeys(t *testing.T) {
	buf := withBuffer(t, LevelDebug)
	DebugFields("wrote file", map[string]interface{}{"root": "/tmp/x", "bytes": 12})
	if !strings.HasSuffix(buf.String(), "wrote file bytes=12 root=/tmp/x\n") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestCommand(t *testing.T) {
	buf := withBuffer(t, LevelDebug)
	Command("/srv/site", "docker-compose", "up", "-d")
	if !strings.Contains(buf.String(), "exec docker-compose up -d dir=/srv/site") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestConcurrentWrites(t *testing.T) {
	buf := withBuffer(t, LevelDebug)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Debug("line %d", n)
		}(i)
	}
	wg.Wait()
	if got := strings.Count(buf.String(), "\n"); got != 20 {
		t.Errorf("expected 20 lines, got %d", got)
	}
}
