package store

import (
	"fmt"
	"strings"

	errUtils "github.com/cloudmesh/yamldb/errors"
)

// Backend specs understood by NewBackend.
const (
	BackendFile   = ":file:"
	BackendMemory = ":memory:"

	redisScheme    = "redis://"
	redisTLSScheme = "rediss://"
	sqliteScheme   = "sqlite://"
)

// NewBackend constructs the backend for the given spec: ":file:" (the
// default when the spec is empty), ":memory:", a "redis://" URI, or a
// "sqlite://" URI.
func NewBackend(spec string, opts Options) (Backend, error) {
	switch {
	case spec == "" || spec == BackendFile:
		return NewFileBackend(opts)
	case spec == BackendMemory:
		return NewInMemoryBackend(opts)
	case strings.HasPrefix(spec, redisScheme) || strings.HasPrefix(spec, redisTLSScheme):
		return NewRedisBackend(spec, opts)
	case strings.HasPrefix(spec, sqliteScheme):
		return NewSQLiteBackend(spec, opts)
	default:
		return nil, fmt.Errorf("%w: '%s'", errUtils.ErrInvalidBackend, spec)
	}
}
