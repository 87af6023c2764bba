// SPDX-License-Identifier: GPL-3.0-or-later
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	DirMode  = fs.FileMode(0700)
	FileMode = fs.FileMode(0600)
)

// Load decodes the JSON file at path into v. A missing file is not an error,
// found is false in that case and v is left untouched.
func Load(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not read %s: %w", path, err)
	}

	err = json.Unmarshal(data, v)
	if err != nil {
		return false, fmt.Errorf("could not decode %s: %w", path, err)
	}

	return true, nil
}

// Save writes v as indented JSON to a temporary file next to path and
// renames it into place. The result is restricted to the owner.
func Save(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", path, err)
	}

	err = os.MkdirAll(filepath.Dir(path), DirMode)
	if err != nil {
		return fmt.Errorf("could not create directory for %s: %w", path, err)
	}

	tmpPath := path + ".tmp"
	err = os.WriteFile(tmpPath, data, FileMode)
	if err != nil {
		return fmt.Errorf("could not write %s: %w", tmpPath, err)
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("could not replace %s: %w", path, err)
	}

	ensurePrivate(path)
	return nil
}

// ensurePrivate is best effort, some filesystems do not support chmod.
func ensurePrivate(path string) {
	_ = os.Chmod(path, FileMode)
}
