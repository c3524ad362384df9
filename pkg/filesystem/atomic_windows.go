//go:build windows

package filesystem

import (
	"os"
	"path/filepath"
)

// writeFileAtomicImpl stages the content in a temp file in the target
// directory and renames it into place. Windows rename is not atomic across
// volumes, so the temp file must live next to the target.
func writeFileAtomicImpl(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}

	// Remove the destination first; os.Rename fails on Windows when the
	// target exists.
	if err := os.Remove(filename); err != nil && !os.IsNotExist(err) {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, filename)
}
