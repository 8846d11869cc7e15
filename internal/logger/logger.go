// Package logger writes diagnostic output for wpsite to stderr.
//
// User-facing messages belong to the output package; this package is for
// what a user only wants to see with --verbose: which command ran in which
// directory, which files were written, how the hosts file was edited.
//
// Lines look like:
//
//	[DEBUG] 2026-10-18 10:30:45 wrote docker-compose.yml bytes=2011 root=/srv/wordpress-docker
//
// The default level is Warn. Init(true) lowers it to Debug.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level is a logging severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is a leveled writer guarded by a mutex.
type Logger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
	now    func() time.Time
}

var std = &Logger{
	level:  LevelWarn,
	output: os.Stderr,
	now:    time.Now,
}

// Init sets the level from the --verbose flag.
func Init(verbose bool) {
	if verbose {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelWarn)
}

// SetLevel sets the minimum level written.
func SetLevel(level Level) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.level = level
}

// GetLevel returns the minimum level written.
func GetLevel() Level {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.level
}

// SetOutput redirects log lines; nil restores os.Stderr.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	std.output = w
}

func (l *Logger) write(level Level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(msg)
	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, fields[k])
		}
	}

	_, _ = fmt.Fprintf(l.output, "[%s] %s %s\n", level, l.now().Format("2006-01-02 15:04:05"), b.String())
}

func Debug(format string, args ...interface{}) {
	std.write(LevelDebug, fmt.Sprintf(format, args...), nil)
}

func Info(format string, args ...interface{}) {
	std.write(LevelInfo, fmt.Sprintf(format, args...), nil)
}

func Warn(format string, args ...interface{}) {
	std.write(LevelWarn, fmt.Sprintf(format, args...), nil)
}

func Error(format string, args ...interface{}) {
	std.write(LevelError, fmt.Sprintf(format, args...), nil)
}

// DebugFields logs msg followed by the fields as sorted key=value pairs.
func DebugFields(msg string, fields map[string]interface{}) {
	std.write(LevelDebug, msg, fields)
}

// WarnFields is DebugFields at Warn level.
func WarnFields(msg string, fields map[string]interface{}) {
	std.write(LevelWarn, msg, fields)
}

// Command logs an external command about to run in dir.
func Command(dir, name string, args ...string) {
	std.write(LevelDebug, "exec "+strings.Join(append([]string{name}, args...), " "), map[string]interface{}{
		"dir": dir,
	})
}
