// Package errors provides standardized error handling for imgsort.
// It defines the error kinds surfaced by the sorting core, typed errors that
// carry the offending path, key or parameter, and helpers for checking them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Source directory kinds
	DirectoryUnreadable
	// Filesystem kinds
	FileNotFound
	FileAccessDenied
	FileOperationFailed
	DestinationExists
	// Session kinds
	UnknownKey
	UnassignedTarget
	NoCurrentFile
	// Config kinds
	InvalidConfig
	ConfigNotFound
)

var kindNames = map[ErrorKind]string{
	Unknown:             "unknown",
	DirectoryUnreadable: "directory",
	FileNotFound:        "filesystem",
	FileAccessDenied:    "filesystem",
	FileOperationFailed: "filesystem",
	DestinationExists:   "filesystem",
	UnknownKey:          "unknown_key",
	UnassignedTarget:    "unassigned_target",
	NoCurrentFile:       "no_current_file",
	InvalidConfig:       "config",
	ConfigNotFound:      "config",
}

// String returns the error family the kind belongs to.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Common error constants. They compare equal to any error of the same kind
// under errors.Is.
var (
	ErrNoCurrentFile    = &ApplicationError{msg: "no current file", kind: NoCurrentFile}
	ErrUnassignedTarget = &ApplicationError{msg: "shortcut has no target", kind: UnassignedTarget}
	ErrUnknownKey       = &ApplicationError{msg: "unknown shortcut key", kind: UnknownKey}
	ErrDestinationExist = &ApplicationError{msg: "destination already exists", kind: DestinationExists}
	ErrInvalidConfig    = &ApplicationError{msg: "invalid configuration", kind: InvalidConfig}
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// Is matches any application error of the same non-Unknown kind.
func (e *ApplicationError) Is(target error) bool {
	k, ok := target.(kinded)
	if !ok || e.kind == Unknown {
		return false
	}
	return k.Kind() == e.kind
}

type kinded interface {
	Kind() ErrorKind
}

// FileError represents errors related to file and directory operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// ShortcutError represents errors tied to a shortcut slot
type ShortcutError struct {
	ApplicationError
	key string
}

// NewShortcutError creates a new shortcut error
func NewShortcutError(msg string, key string, kind ErrorKind) *ShortcutError {
	return &ShortcutError{
		ApplicationError: ApplicationError{
			msg:  msg,
			kind: kind,
		},
		key: key,
	}
}

// Error returns the shortcut error message
func (e *ShortcutError) Error() string {
	if e.key != "" {
		return fmt.Sprintf("%s: %s", e.msg, e.key)
	}
	return e.ApplicationError.Error()
}

// Key returns the shortcut key associated with the error
func (e *ShortcutError) Key() string {
	return e.key
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// NewNoCurrentFile reports an action attempted on an empty file set
func NewNoCurrentFile() error {
	return &ApplicationError{msg: "no current file", kind: NoCurrentFile}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the first non-Unknown kind found in err's chain.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(kinded); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsDirectoryError checks if the source directory could not be listed
func IsDirectoryError(err error) bool {
	return KindOf(err) == DirectoryUnreadable
}

// IsUnknownKey checks if the error names a key outside the shortcut alphabet
func IsUnknownKey(err error) bool {
	return KindOf(err) == UnknownKey
}

// IsUnassignedTarget checks if routing was attempted on an empty slot
func IsUnassignedTarget(err error) bool {
	return KindOf(err) == UnassignedTarget
}

// IsNoCurrentFile checks if an action was attempted with no current file
func IsNoCurrentFile(err error) bool {
	return KindOf(err) == NoCurrentFile
}

// IsFilesystemError checks if a move, copy or delete failed
func IsFilesystemError(err error) bool {
	switch KindOf(err) {
	case FileNotFound, FileAccessDenied, FileOperationFailed, DestinationExists:
		return true
	}
	return false
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileNotFound
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
