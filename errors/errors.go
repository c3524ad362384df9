// Package errors defines the sentinel errors shared across yamldb packages,
// plus helpers for attaching exit codes and formatting errors for the CLI.
//
// Sentinels are wrapped at call sites with `fmt.Errorf("%w: ...", err)` or
// errors.Join so callers can test categories with errors.Is.
package errors

import "errors"

var (
	// ErrKeyNotFound is returned when a dotted key does not resolve to an entry.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEmptyKey is returned when an operation receives an empty key.
	ErrEmptyKey = errors.New("key cannot be empty")

	// ErrPathConflict is returned when a dotted path traverses a value that
	// is not a mapping (e.g. setting "a.b" while "a" holds a scalar).
	ErrPathConflict = errors.New("path traverses a non-mapping value")

	// ErrDocumentNotMap is returned when a loaded document's top level is not
	// a YAML mapping.
	ErrDocumentNotMap = errors.New("document top level must be a mapping")

	// ErrMissingID is returned by merge-file operations when the external
	// document has no usable top-level `id` field.
	ErrMissingID = errors.New("document id not found")

	// ErrInvalidBackend is returned for an unrecognized backend spec.
	ErrInvalidBackend = errors.New("backend must be :file:, :memory:, or a redis:// or sqlite:// URI")

	// ErrBackendClosed is returned when a backend is used after Close.
	ErrBackendClosed = errors.New("backend is closed")

	// ErrLoadDocument is returned when a stored document cannot be read or parsed.
	ErrLoadDocument = errors.New("failed to load document")

	// ErrSaveDocument is returned when a document cannot be persisted.
	ErrSaveDocument = errors.New("failed to save document")

	// ErrDeleteDocument is returned when a stored document cannot be removed.
	ErrDeleteDocument = errors.New("failed to delete document")

	// ErrFileLocked is returned when the database file lock cannot be acquired.
	ErrFileLocked = errors.New("database file is locked")

	// ErrCreateDir is returned when the database directory cannot be created.
	ErrCreateDir = errors.New("could not create database directory")

	// ErrMerge is the category error for deep-merge failures.
	ErrMerge = errors.New("merge failed")

	// ErrNilConfig is returned when a required configuration is nil.
	ErrNilConfig = errors.New("configuration is nil")

	// ErrInvalidListMergeStrategy is returned for unsupported list merge strategies.
	ErrInvalidListMergeStrategy = errors.New("invalid list merge strategy")

	// ErrValidation is the category error for schema validation failures.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidQuery is returned for expressions the query engines reject.
	ErrInvalidQuery = errors.New("invalid query expression")

	// ErrWatchUnsupported is returned when Watch is requested on a backend
	// without an observable document file.
	ErrWatchUnsupported = errors.New("watch is only supported by the file backend")

	// ErrInvalidLogLevel is returned for unknown log level names.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidOutputFormat is returned for unsupported output formats.
	ErrInvalidOutputFormat = errors.New("invalid output format, supported formats: yaml, json")

	// ErrConfigNotFound is returned when an explicitly requested CLI config
	// file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidArgument is returned for CLI arguments and flag combinations
	// that cannot be processed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSilent carries an exit code without a message. Commands return it
	// when the outcome was already written to stdout.
	ErrSilent = errors.New("silent")
)
