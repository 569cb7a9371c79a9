package checkpoint

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMalformed is returned by [Load] for checkpoint files that don't match
// the expected format: wrong header, rows without exactly two fields, or
// unparseable download cells.
var ErrMalformed = errors.New("malformed checkpoint file")

var header = []string{"pkg_name", "downloads"}

// Load reads a checkpoint table from path, preserving row order.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	first, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if first[0] != header[0] || first[1] != header[1] {
		return nil, fmt.Errorf("%w: unexpected header %q", ErrMalformed, first)
	}

	t := &Table{cells: make(map[string]Downloads)}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		d, err := parseDownloads(row[1])
		if err != nil {
			return nil, err
		}
		if _, ok := t.cells[row[0]]; ok {
			return nil, fmt.Errorf("%w: duplicate package %q", ErrMalformed, row[0])
		}
		t.order = append(t.order, row[0])
		t.cells[row[0]] = d
	}
}

// Save writes the table to path, replacing any existing file. The write is
// treated as a scoped resource: the file is closed on every exit path, and
// a close failure surfaces as the returned error.
func Save(path string, t *Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, rec := range t.Records() {
		if err := w.Write([]string{rec.Name, rec.Downloads.String()}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
