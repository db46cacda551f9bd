// Package csv reads and writes coursegen tables as comma-separated values.
package csv

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/fwojciec/coursegen"
)

// Ensure TableCodec implements the table interfaces at compile time.
var (
	_ coursegen.TableReader = (*TableCodec)(nil)
	_ coursegen.TableWriter = (*TableCodec)(nil)
)

// TableCodec converts between CSV and coursegen tables.
type TableCodec struct{}

// NewTableCodec creates a new TableCodec.
func NewTableCodec() *TableCodec {
	return &TableCodec{}
}

// ReadTable reads the first record as the header and the rest as rows.
// An empty input yields an empty table.
func (c *TableCodec) ReadTable(r io.Reader) (*coursegen.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, coursegen.Errorf(coursegen.EINVALID, "malformed CSV at line %d: %v", perr.Line, perr.Err)
		}
		return nil, err
	}

	t := &coursegen.Table{}
	if len(records) == 0 {
		return t, nil
	}
	t.Header = records[0]
	t.Rows = records[1:]
	return t, nil
}

// WriteTable writes the header followed by the rows. An empty header is
// not written.
func (c *TableCodec) WriteTable(w io.Writer, t *coursegen.Table) error {
	cw := csv.NewWriter(w)
	if len(t.Header) > 0 {
		if err := cw.Write(t.Header); err != nil {
			return err
		}
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}
