package mock

import (
	"io"

	"github.com/fwojciec/coursegen"
)

var (
	_ coursegen.TableReader = (*TableReader)(nil)
	_ coursegen.TableWriter = (*TableWriter)(nil)
)

// TableReader is a mock implementation of coursegen.TableReader.
type TableReader struct {
	ReadTableFn func(r io.Reader) (*coursegen.Table, error)
}

func (tr *TableReader) ReadTable(r io.Reader) (*coursegen.Table, error) {
	return tr.ReadTableFn(r)
}

// TableWriter is a mock implementation of coursegen.TableWriter.
type TableWriter struct {
	WriteTableFn func(w io.Writer, t *coursegen.Table) error
}

func (tw *TableWriter) WriteTable(w io.Writer, t *coursegen.Table) error {
	return tw.WriteTableFn(w, t)
}
