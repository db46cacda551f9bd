package coursegen

import (
	"io"
	"strings"
)

// ListSeparator joins the elements of list-valued fields in CSV output.
const ListSeparator = "; "

// ValueKind identifies the JSON kind of a field value.
type ValueKind int

// ValueKind constants.
const (
	NullValue ValueKind = iota
	StringValue
	NumberValue
	BoolValue
	ListValue
	ObjectValue
)

// Value is a decoded JSON value. Text holds the string contents for
// strings and the compact JSON literal for every other kind. Items holds
// the elements of a list.
type Value struct {
	Kind  ValueKind
	Text  string
	Items []Value
}

// Cell returns the value as a CSV cell: strings verbatim, null as empty,
// lists as their elements joined by ListSeparator, and everything else as
// its JSON literal.
func (v Value) Cell() string {
	switch v.Kind {
	case NullValue:
		return ""
	case ListValue:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = item.Text
		}
		return strings.Join(parts, ListSeparator)
	default:
		return v.Text
	}
}

// Field is one key/value pair of a record.
type Field struct {
	Key   string
	Value Value
}

// Record is a flat JSON object with its fields in document order.
type Record []Field

// Keys returns the record's keys in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// RecordDecoder decodes a JSON array of objects.
type RecordDecoder interface {
	// DecodeRecords returns one Record per array element.
	// Returns EINVALID if the input is not an array of objects.
	DecodeRecords(r io.Reader) ([]Record, error)
}

// Repairer fixes malformed JSON, such as text pasted from an LLM chat.
type Repairer interface {
	Repair(s string) (string, error)
}

// RecordsToTable flattens records into a table whose header is the keys of
// the first record. Fields missing from a later record are left empty.
// Returns EINVALID if a record has a key the first record lacks.
func RecordsToTable(records []Record) (*Table, error) {
	if len(records) == 0 {
		return &Table{}, nil
	}

	header := records[0].Keys()
	index := make(map[string]int, len(header))
	for i, k := range header {
		index[k] = i
	}

	t := &Table{Header: header, Rows: make([][]string, 0, len(records))}
	for n, rec := range records {
		row := make([]string, len(header))
		for _, f := range rec {
			i, ok := index[f.Key]
			if !ok {
				return nil, Errorf(EINVALID, "record %d has field %q not in header", n+1, f.Key)
			}
			row[i] = f.Value.Cell()
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
