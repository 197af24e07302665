// Copyright 2026 NetApp, Inc. All Rights Reserved.

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	TextFormat = "text"
	JSONFormat = "json"
)

// InitLogLevel configures the logging level.  The debug flag takes precedence if set,
// otherwise the logLevel flag (trace, debug, info, warn, error, fatal) is used.
func InitLogLevel(debug bool, logLevel string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}
	return nil
}

// InitLogFormat configures the console log format, allowing a choice of text or JSON.
func InitLogFormat(logFormat string) error {
	formatter, err := newFormatter(logFormat, false)
	if err != nil {
		return err
	}
	log.SetFormatter(formatter)
	return nil
}

// newFormatter returns the formatter for text or JSON output. File output never carries colors.
func newFormatter(logFormat string, plain bool) (log.Formatter, error) {
	switch logFormat {
	case TextFormat:
		return &log.TextFormatter{
			DisableColors:   plain,
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		}, nil
	case JSONFormat:
		return &log.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: log.FieldMap{
				log.FieldKeyTime: "@timestamp",
				log.FieldKeyMsg:  "message",
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", logFormat)
	}
}

// InitLogFile adds a hook that copies every log entry to the file at logPath. The caller
// closes the returned hook when done.
func InitLogFile(logPath, logFormat string) (*FileHook, error) {
	hook, err := NewFileHook(logPath, logFormat)
	if err != nil {
		return nil, fmt.Errorf("could not initialize logging to file: %v", err)
	}
	log.AddHook(hook)

	Log().WithFields(log.Fields{
		"logLevel":        log.GetLevel().String(),
		"logFileLocation": hook.GetLocation(),
	}).Debug("Initialized file logging.")

	return hook, nil
}

// FileHook sends log entries to a file, moving it aside to <path>.old once it reaches the
// rotation threshold.
type FileHook struct {
	logFileLocation string
	formatter       log.Formatter
	threshold       int64

	mutex sync.Mutex
	file  *os.File
	size  int64
}

// NewFileHook creates a new log hook for writing to a file.
func NewFileHook(logPath, logFormat string) (*FileHook, error) {
	formatter, err := newFormatter(logFormat, true)
	if err != nil {
		return nil, err
	}

	if logPath == "" {
		return nil, fmt.Errorf("log path must not be empty")
	}

	// If the parent directory doesn't exist, make it
	logDir := filepath.Dir(logPath)
	dir, err := os.Lstat(logDir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create log directory %v. %v", logDir, err)
		}
	} else if dir != nil && !dir.IsDir() {
		return nil, fmt.Errorf("log path %v exists and is not a directory, please remove it", logDir)
	}

	hook := &FileHook{
		logFileLocation: logPath,
		formatter:       formatter,
		threshold:       LogRotationThreshold,
	}
	if err := hook.openFile(); err != nil {
		return nil, err
	}
	return hook, nil
}

func (hook *FileHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook *FileHook) Fire(entry *log.Entry) error {
	lineBytes, err := hook.formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read log entry. %v", err)
		return err
	}
	if len(lineBytes) > MaxLogEntryLength {
		lineBytes = append(lineBytes[:MaxLogEntryLength], []byte("<truncated>\n")...)
	}

	hook.mutex.Lock()
	defer hook.mutex.Unlock()

	if hook.file == nil {
		return nil
	}

	n, err := hook.file.Write(lineBytes)
	hook.size += int64(n)
	if err != nil {
		return err
	}

	if hook.size >= hook.threshold {
		return hook.rotate()
	}
	return nil
}

func (hook *FileHook) GetLocation() string {
	return hook.logFileLocation
}

// Close stops writing to the log file. Entries fired afterward are dropped.
func (hook *FileHook) Close() error {
	hook.mutex.Lock()
	defer hook.mutex.Unlock()

	if hook.file == nil {
		return nil
	}
	err := hook.file.Close()
	hook.file = nil
	return err
}

func (hook *FileHook) openFile() error {
	logFile, err := os.OpenFile(hook.logFileLocation, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("could not open log file %v. %v", hook.logFileLocation, err)
	}

	info, err := logFile.Stat()
	if err != nil {
		_ = logFile.Close()
		return fmt.Errorf("could not stat log file %v. %v", hook.logFileLocation, err)
	}

	hook.file = logFile
	hook.size = info.Size()
	return nil
}

// rotate must be called with the mutex held. The rename overwrites any previous .old file.
func (hook *FileHook) rotate() error {
	if err := hook.file.Close(); err != nil {
		return err
	}
	hook.file = nil

	if err := os.Rename(hook.logFileLocation, hook.logFileLocation+".old"); err != nil {
		return err
	}
	return hook.openFile()
}
