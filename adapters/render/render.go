// Package render contains the report renderers: JSON, a plain-text digest, a
// Markdown digest for the web results page, and an Excel statistics workbook.
// Every renderer writes atomically (temp file + rename) into the run's
// output directory.
package render

import (
	"os"
	"path/filepath"

	"tablescrub/internal/errors"
)

func writeFileAtomic(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.IOError("cannot create output directory", err)
	}
	tmp, err := os.CreateTemp(dir, "."+name+"-*")
	if err != nil {
		return "", errors.IOError("cannot create temporary file", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", errors.IOError("cannot write "+name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", errors.IOError("cannot close "+name, err)
	}
	dest := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", errors.IOError("cannot move "+name+" into place", err)
	}
	return dest, nil
}
