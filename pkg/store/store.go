// Package store provides the persistence backends a database document can
// live behind: a YAML file, process memory, Redis, or SQLite.
package store

import (
	"os"

	"github.com/mitchellh/mapstructure"
)

// Backend persists a whole YAML document.
type Backend interface {
	// Load returns the stored document and whether one exists.
	Load() (map[string]any, bool, error)

	// Save persists the document.
	Save(data map[string]any) error

	// Delete removes the stored document.
	Delete() error

	// Close releases backend resources (locks, connections).
	Close() error

	// Name identifies the backend target in logs and error messages.
	Name() string
}

// Options configures backend construction. Every backend decodes the
// fields it understands and ignores the rest.
type Options struct {
	// File is the document path for the file backend.
	File string `yaml:"file" json:"file" mapstructure:"file"`

	// FileMode is the permission for files the file backend creates.
	FileMode os.FileMode `yaml:"file_mode" json:"file_mode" mapstructure:"file_mode"`

	// DocumentName identifies the document for remote backends (the Redis
	// key suffix, the SQLite row key).
	DocumentName string `yaml:"document_name" json:"document_name" mapstructure:"document_name"`

	// Prefix namespaces the Redis key. Defaults to "yamldb:".
	Prefix string `yaml:"prefix" json:"prefix" mapstructure:"prefix"`
}

const (
	defaultFileMode     = os.FileMode(0o644)
	defaultDocumentName = "default"
	defaultRedisPrefix  = "yamldb:"
)

// ParseOptions decodes backend options from a raw config map.
func ParseOptions(options map[string]any) (Options, error) {
	var opts Options
	if err := mapstructure.Decode(options, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}

func (o Options) fileMode() os.FileMode {
	if o.FileMode == 0 {
		return defaultFileMode
	}
	return o.FileMode
}

func (o Options) documentName() string {
	if o.DocumentName == "" {
		return defaultDocumentName
	}
	return o.DocumentName
}

func (o Options) prefix() string {
	if o.Prefix == "" {
		return defaultRedisPrefix
	}
	return o.Prefix
}
