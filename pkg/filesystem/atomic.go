// Package filesystem provides atomic file writes for the database file so
// readers never observe a truncated document.
package filesystem

import "os"

// WriteFileAtomic writes data to filename atomically: the content is staged
// in a temporary file and moved into place with rename. Platform-specific
// implementations are selected via build tags.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return writeFileAtomicImpl(filename, data, perm)
}
