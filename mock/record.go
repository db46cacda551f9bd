package mock

import (
	"io"

	"github.com/fwojciec/coursegen"
)

var (
	_ coursegen.RecordDecoder = (*RecordDecoder)(nil)
	_ coursegen.Repairer      = (*Repairer)(nil)
)

// RecordDecoder is a mock implementation of coursegen.RecordDecoder.
type RecordDecoder struct {
	DecodeRecordsFn func(r io.Reader) ([]coursegen.Record, error)
}

func (d *RecordDecoder) DecodeRecords(r io.Reader) ([]coursegen.Record, error) {
	return d.DecodeRecordsFn(r)
}

// Repairer is a mock implementation of coursegen.Repairer.
type Repairer struct {
	RepairFn func(s string) (string, error)
}

func (r *Repairer) Repair(s string) (string, error) {
	return r.RepairFn(s)
}
