// Package csvio reads and writes tables as plain UTF-8 comma-separated text.
package csvio

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"tablescrub/domain/table"
	"tablescrub/internal/errors"
)

// Load reads a CSV file with a header row into a table. The load is
// permissive about short rows: missing trailing fields become empty cells.
// Rows with more fields than the header, duplicate header names and broken
// quoting are format errors; an unreadable file is an I/O error.
func Load(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IOError("cannot open input file", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err == io.EOF {
		// an empty file is an empty table, not an error
		return table.New(nil)
	}
	if err != nil {
		return nil, errors.WithCode(errors.CodeFormatError, err)
	}

	t, err := table.New(headers)
	if err != nil {
		return nil, err
	}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WithCode(errors.CodeFormatError, err)
		}
		if err := t.AppendRow(rec); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Save writes the table to path, creating missing directories. The file is
// written to a temporary name and renamed into place so a crash mid-write
// never leaves a partial CSV at the destination.
func Save(path string, t *table.Table) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.IOError("cannot create output directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".csv-*")
	if err != nil {
		return errors.IOError("cannot create temporary file", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(t.Headers()); err != nil {
		tmp.Close()
		return errors.IOError("cannot write header row", err)
	}
	for i := 0; i < t.Len(); i++ {
		if err := w.Write(t.Row(i)); err != nil {
			tmp.Close()
			return errors.IOError("cannot write row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return errors.IOError("cannot flush output", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.IOError("cannot close temporary file", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.IOError("cannot move output into place", err)
	}
	return nil
}
