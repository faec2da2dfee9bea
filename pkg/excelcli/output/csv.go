// Package output writes extraction results.
package output

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
)

// CSVWriter writes records to a temporary file next to the destination and
// moves it into place on Commit, so a failed run never leaves a partial CSV
// behind and never clobbers an existing one.
type CSVWriter struct {
	path    string
	tmp     *os.File
	w       *csv.Writer
	records int
	done    bool
}

// Create opens a writer for path. The destination directory must exist.
func Create(path string) (*CSVWriter, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	return &CSVWriter{
		path: path,
		tmp:  tmp,
		w:    csv.NewWriter(tmp),
	}, nil
}

// Path returns the destination path.
func (c *CSVWriter) Path() string {
	return c.path
}

// Records returns the number of records written so far, header included.
func (c *CSVWriter) Records() int {
	return c.records
}

// Write appends one record.
func (c *CSVWriter) Write(record []string) error {
	if c.done {
		return errors.New("write after close")
	}
	if err := c.w.Write(record); err != nil {
		return err
	}
	c.records++
	return nil
}

// Commit flushes the records and renames the temporary file onto the
// destination.
func (c *CSVWriter) Commit() error {
	if c.done {
		return errors.New("writer already closed")
	}
	c.done = true

	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.discard()
		return err
	}
	if err := c.tmp.Sync(); err != nil {
		c.discard()
		return err
	}
	if err := c.tmp.Close(); err != nil {
		os.Remove(c.tmp.Name())
		return err
	}
	if err := os.Chmod(c.tmp.Name(), 0644); err != nil {
		os.Remove(c.tmp.Name())
		return err
	}
	if err := os.Rename(c.tmp.Name(), c.path); err != nil {
		os.Remove(c.tmp.Name())
		return err
	}
	return nil
}

// Abort drops everything written so far. It is a no-op after Commit.
func (c *CSVWriter) Abort() {
	if c.done {
		return
	}
	c.done = true
	c.discard()
}

func (c *CSVWriter) discard() {
	c.tmp.Close()
	os.Remove(c.tmp.Name())
}
