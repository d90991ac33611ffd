package logging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileLoggerConfig holds configuration for file logging
type FileLoggerConfig struct {
	// Path is the log file path
	Path string
	// Format is the output format (json or text)
	Format Format
	// Level is the minimum log level
	Level Level
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of backup files to keep
	MaxBackups int
}

// fileState is the open file and its running size, shared by every logger
// derived through WithFields so rotation stays coherent across all of them
type fileState struct {
	mu   sync.Mutex
	file *os.File
	size int64
}

// FileLogger implements Logger with append-only file output and size-based
// rotation
type FileLogger struct {
	config FileLoggerConfig
	state  *fileState
	fields Fields
}

// NewFileLogger creates a new file logger, creating the log directory as
// needed
func NewFileLogger(config FileLoggerConfig) (*FileLogger, error) {
	dir := filepath.Dir(config.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(config.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	return &FileLogger{
		config: config,
		state:  &fileState{file: file, size: info.Size()},
	}, nil
}

// Debug logs a debug message
func (l *FileLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.log(DebugLevel, msg, nil, fields)
}

// Info logs an info message
func (l *FileLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.log(InfoLevel, msg, nil, fields)
}

// Warn logs a warning message
func (l *FileLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.log(WarnLevel, msg, nil, fields)
}

// Error logs an error message
func (l *FileLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.log(ErrorLevel, msg, err, fields)
}

// WithFields returns a logger sharing the same file with additional fields
func (l *FileLogger) WithFields(fields Fields) Logger {
	return &FileLogger{
		config: l.config,
		state:  l.state,
		fields: mergeFields(l.fields, fields),
	}
}

// Close flushes and closes the log file
func (l *FileLogger) Close() error {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	if l.state.file != nil {
		err := l.state.file.Close()
		l.state.file = nil
		return err
	}
	return nil
}

func (l *FileLogger) log(level Level, msg string, err error, fields Fields) {
	if level < l.config.Level {
		return
	}

	line := formatEntry(l.config.Format, level, msg, err, mergeFields(l.fields, fields))
	if line == nil {
		return
	}

	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	if l.state.file == nil {
		return
	}

	if l.config.MaxSize > 0 && l.state.size >= l.config.MaxSize {
		l.rotate()
	}

	if l.state.file == nil {
		return
	}

	n, _ := l.state.file.Write(line)
	l.state.size += int64(n)
}

// rotate shifts existing backups up by one and starts a fresh log file.
// Rotation failures are swallowed; logging must never take the tool down.
func (l *FileLogger) rotate() {
	l.state.file.Close()

	for i := l.config.MaxBackups - 1; i >= 1; i-- {
		os.Rename(
			fmt.Sprintf("%s.%d", l.config.Path, i),
			fmt.Sprintf("%s.%d", l.config.Path, i+1),
		)
	}
	os.Rename(l.config.Path, l.config.Path+".1")

	if l.config.MaxBackups > 0 {
		os.Remove(fmt.Sprintf("%s.%d", l.config.Path, l.config.MaxBackups+1))
	}

	file, err := os.OpenFile(l.config.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		l.state.file = nil
		return
	}

	l.state.file = file
	l.state.size = 0
}
