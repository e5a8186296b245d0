// Package logging provides structured logging for bingocard.
// Output goes to the console, to a timestamped file in a log directory, or
// both; old log files are cleaned up by count and age.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var slogLevels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel converts a level name (debug, info, warn, error) to a Level.
// Unknown names yield LevelInfo and false.
func ParseLevel(s string) (Level, bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "":
		return LevelInfo, true
	case "WARNING":
		return LevelWarn, true
	}
	for level, n := range levelNames {
		if n == name {
			return level, true
		}
	}
	return LevelInfo, false
}

func (l Level) slogLevel() slog.Level {
	if sl, ok := slogLevels[l]; ok {
		return sl
	}
	return slog.LevelInfo
}

// filePrefix names log files as bingocard_<timestamp>.log.
const filePrefix = "bingocard_"

// Config configures the logger.
type Config struct {
	Level Level
	// LogDir receives one log file per process. Empty disables file logging.
	LogDir string
	// MaxLogFiles and MaxLogAge bound what Cleanup keeps; zero means no limit.
	MaxLogFiles int
	MaxLogAge   time.Duration
	// Console receives log lines as well. Nil disables console logging.
	Console    io.Writer
	JSONFormat bool
}

// DefaultConfig logs at info level to stderr, without a log file.
func DefaultConfig() *Config {
	return &Config{
		Level:       LevelInfo,
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
		Console:     os.Stderr,
	}
}

// Logger wraps a slog.Logger and owns its log file, if any.
type Logger struct {
	slog   *slog.Logger
	config *Config
	file   *logFile
}

type logFile struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// New creates a logger. When config.LogDir is set a new log file is opened
// there and older files are cleaned up.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	l := &Logger{config: config}

	var writers []io.Writer
	if config.LogDir != "" {
		lf, err := openLogFile(config.LogDir)
		if err != nil {
			return nil, err
		}
		l.file = lf
		writers = append(writers, lf.f)
	}
	if config.Console != nil {
		writers = append(writers, config.Console)
	}

	l.slog = slog.New(newHandler(writers, config))

	if l.file != nil {
		if err := l.Cleanup(); err != nil {
			l.slog.Warn("log cleanup failed", "error", err)
		}
	}
	return l, nil
}

func openLogFile(dir string) (*logFile, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	name := filePrefix + time.Now().Format("20060102_150405") + ".log"
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	return &logFile{f: f, path: path}, nil
}

func newHandler(writers []io.Writer, config *Config) slog.Handler {
	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	opts := &slog.HandlerOptions{Level: config.Level.slogLevel()}
	if config.JSONFormat {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}

// NewNoop creates a logger that discards everything.
func NewNoop() *Logger {
	return &Logger{
		slog:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		config: &Config{},
	}
}

// LogPath returns the current log file, or "" without one.
func (l *Logger) LogPath() string {
	if l.file == nil {
		return ""
	}
	return l.file.path
}

// Close closes the log file. Loggers derived with With share the file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	l.file.mu.Lock()
	defer l.file.mu.Unlock()
	if l.file.f == nil {
		return nil
	}
	err := l.file.f.Close()
	l.file.f = nil
	return err
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...), config: l.config, file: l.file}
}

type contextKey string

const (
	// ContextKeyRunID holds the generation run ID.
	ContextKeyRunID contextKey = "run_id"
	// ContextKeyPlayer holds the player whose card is being built.
	ContextKeyPlayer contextKey = "player"
)

// WithContext returns a logger carrying the run ID and player stored in ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	var args []any
	for _, key := range []contextKey{ContextKeyRunID, ContextKeyPlayer} {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			args = append(args, string(key), v)
		}
	}
	if len(args) == 0 {
		return l
	}
	return l.With(args...)
}

func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ContextKeyRunID, runID)
}

func WithPlayer(ctx context.Context, player string) context.Context {
	return context.WithValue(ctx, ContextKeyPlayer, player)
}

// Cleanup removes bingocard log files beyond MaxLogFiles (newest kept) or
// older than MaxLogAge. The current file is never removed.
func (l *Logger) Cleanup() error {
	dir := l.config.LogDir
	if dir == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var files []candidate
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || filepath.Ext(name) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, candidate{filepath.Join(dir, name), info.ModTime()})
	}
	slices.SortFunc(files, func(a, b candidate) int {
		return b.modTime.Compare(a.modTime)
	})

	cutoff := time.Now().Add(-l.config.MaxLogAge)
	current := l.LogPath()
	removed := 0
	for i, f := range files {
		if f.path == current {
			continue
		}
		tooMany := l.config.MaxLogFiles > 0 && i >= l.config.MaxLogFiles
		tooOld := l.config.MaxLogAge > 0 && f.modTime.Before(cutoff)
		if !tooMany && !tooOld {
			continue
		}
		if os.Remove(f.path) == nil {
			removed++
		}
	}

	if removed > 0 {
		l.slog.Debug("cleaned up old log files", "count", removed)
	}
	return nil
}
