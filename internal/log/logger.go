// Package log is the structured logger used across imgsort. It wraps logrus
// with field helpers, error-aware logging and text or JSON output.
package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"imgsort/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

const timeLayout = "2006-01-02 15:04:05"

// Field is a single structured key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sets the writer log lines go to.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(l *Logger) {
		l.json = true
	}
}

// WithFile tees output into the named file, appending.
func WithFile(path string) Option {
	return func(l *Logger) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "log: cannot create log directory: %v\n", err)
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: cannot open log file: %v\n", err)
			return
		}
		l.file = f
		l.out = io.MultiWriter(l.out, f)
	}
}

// Logger carries a logrus logger and a set of fields attached to every line.
type Logger struct {
	base   *logrus.Logger
	out    io.Writer
	file   *os.File
	json   bool
	fields logrus.Fields
}

// NewLogger creates a logger writing text to stdout unless options say otherwise.
func NewLogger(opts ...Option) *Logger {
	l := &Logger{out: os.Stdout, fields: logrus.Fields{}}
	for _, opt := range opts {
		opt(l)
	}

	base := logrus.New()
	base.SetOutput(l.out)
	base.SetLevel(logrus.DebugLevel)
	if l.json {
		base.SetFormatter(&jsonFormatter{})
	} else {
		base.SetFormatter(&textFormatter{})
	}
	l.base = base
	return l
}

// Configure replaces the package logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// SetDebug enables or disables debug lines for every logger.
func SetDebug(debug bool) {
	isDebug = debug
}

// Close releases the log file, if any.
func Close() error {
	if logger.file != nil {
		return logger.file.Close()
	}
	return nil
}

// With returns a child logger carrying extra fields.
func (l *Logger) With(fields ...Field) *Logger {
	child := *l
	child.fields = make(logrus.Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		child.fields[k] = v
	}
	for _, f := range fields {
		child.fields[f.Key] = f.Value
	}
	return &child
}

func (l *Logger) Info(msg string)  { l.emit(logrus.InfoLevel, msg) }
func (l *Logger) Warn(msg string)  { l.emit(logrus.WarnLevel, msg) }
func (l *Logger) Error(msg string) { l.emit(logrus.ErrorLevel, msg) }

func (l *Logger) Debug(msg string) {
	if isDebug {
		l.emit(logrus.DebugLevel, msg)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.emit(logrus.InfoLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.emit(logrus.WarnLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.emit(logrus.ErrorLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.emit(logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

// emit is always two frames below the caller we want to report.
func (l *Logger) emit(level logrus.Level, msg string) {
	fields := make(logrus.Fields, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	if _, file, line, ok := runtime.Caller(2); ok {
		fields["caller"] = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	l.base.WithFields(fields).Log(level, msg)
}

// Package level helpers use printf-style formatting.

func Info(format string, args ...interface{}) {
	logger.emit(logrus.InfoLevel, fmt.Sprintf(format, args...))
}

func Infof(format string, args ...interface{}) {
	logger.emit(logrus.InfoLevel, fmt.Sprintf(format, args...))
}

func Warn(format string, args ...interface{}) {
	logger.emit(logrus.WarnLevel, fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...interface{}) {
	logger.emit(logrus.WarnLevel, fmt.Sprintf(format, args...))
}

func Error(format string, args ...interface{}) {
	logger.emit(logrus.ErrorLevel, fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...interface{}) {
	logger.emit(logrus.ErrorLevel, fmt.Sprintf(format, args...))
}

func Debug(format string, args ...interface{}) {
	if isDebug {
		logger.emit(logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

func Debugf(format string, args ...interface{}) {
	if isDebug {
		logger.emit(logrus.DebugLevel, fmt.Sprintf(format, args...))
	}
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError attaches the error text, its kind and any path, param or key it carries.
func LogWithError(err error) *Logger {
	if err == nil {
		return logger.With(F("error", "<nil>"))
	}
	fields := []Field{F("error", err.Error()), F("error_kind", int(errors.KindOf(err)))}

	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var cfgErr *errors.ConfigError
	if errors.As(err, &cfgErr) && cfgErr.Param() != "" {
		fields = append(fields, F("param", cfgErr.Param()))
	}
	var keyErr *errors.ShortcutError
	if errors.As(err, &keyErr) && keyErr.Key() != "" {
		fields = append(fields, F("key", keyErr.Key()))
	}
	return logger.With(fields...)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	LogWithError(err).emit(logrus.ErrorLevel, msg)
}

type textFormatter struct{}

func (f *textFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s] %s: %s", e.Time.Format(timeLayout), levelName(e.Level), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

type jsonFormatter struct{}

func (f *jsonFormatter) Format(e *logrus.Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(e.Data)+3)
	for k, v := range e.Data {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}
	data["timestamp"] = e.Time.Format(time.RFC3339)
	data["level"] = levelName(e.Level)
	data["message"] = e.Message

	out, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal log entry: %w", err)
	}
	return append(out, '\n'), nil
}

func levelName(level logrus.Level) string {
	switch level {
	case logrus.DebugLevel:
		return "DEBUG"
	case logrus.InfoLevel:
		return "INFO"
	case logrus.WarnLevel:
		return "WARN"
	case logrus.ErrorLevel:
		return "ERROR"
	default:
		return "LOG"
	}
}
