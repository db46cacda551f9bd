// Package json decodes JSON arrays of objects into coursegen records while
// keeping each object's key order.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/fwojciec/coursegen"
)

// Ensure RecordDecoder implements coursegen.RecordDecoder at compile time.
var _ coursegen.RecordDecoder = (*RecordDecoder)(nil)

// RecordDecoder decodes a JSON array of objects. Keys keep their document
// order; a repeated key keeps its first position and its last value.
type RecordDecoder struct{}

// NewRecordDecoder creates a new RecordDecoder.
func NewRecordDecoder() *RecordDecoder {
	return &RecordDecoder{}
}

// DecodeRecords returns one record per array element.
func (d *RecordDecoder) DecodeRecords(r io.Reader) ([]coursegen.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '[', "a JSON array"); err != nil {
		return nil, err
	}

	records := []coursegen.Record{}
	for dec.More() {
		rec, err := decodeRecord(dec, len(records)+1)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if _, err := dec.Token(); err != nil {
		return nil, malformed(err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, coursegen.Errorf(coursegen.EINVALID, "unexpected data after the JSON array")
	}
	return records, nil
}

func decodeRecord(dec *json.Decoder, n int) (coursegen.Record, error) {
	if err := expectDelim(dec, '{', "an object"); err != nil {
		return nil, coursegen.Errorf(coursegen.EINVALID, "element %d: %s", n, coursegen.ErrorMessage(err))
	}

	var rec coursegen.Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, malformed(err)
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, malformed(err)
		}
		v, err := parseValue(raw)
		if err != nil {
			return nil, malformed(err)
		}

		if i := indexOf(rec, key); i >= 0 {
			rec[i].Value = v
		} else {
			rec = append(rec, coursegen.Field{Key: key, Value: v})
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, malformed(err)
	}
	return rec, nil
}

// parseValue classifies a raw JSON value. Non-string values keep their
// compact literal as Text.
func parseValue(raw json.RawMessage) (coursegen.Value, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return coursegen.Value{}, err
	}
	text := buf.String()

	switch text[0] {
	case 'n':
		return coursegen.Value{Kind: coursegen.NullValue, Text: text}, nil
	case 't', 'f':
		return coursegen.Value{Kind: coursegen.BoolValue, Text: text}, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return coursegen.Value{}, err
		}
		return coursegen.Value{Kind: coursegen.StringValue, Text: s}, nil
	case '{':
		return coursegen.Value{Kind: coursegen.ObjectValue, Text: text}, nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return coursegen.Value{}, err
		}
		items := make([]coursegen.Value, len(elems))
		for i, elem := range elems {
			item, err := parseValue(elem)
			if err != nil {
				return coursegen.Value{}, err
			}
			items[i] = item
		}
		return coursegen.Value{Kind: coursegen.ListValue, Text: text, Items: items}, nil
	default:
		return coursegen.Value{Kind: coursegen.NumberValue, Text: text}, nil
	}
}

func expectDelim(dec *json.Decoder, want json.Delim, what string) error {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return coursegen.Errorf(coursegen.EINVALID, "expected %s, got empty input", what)
	} else if err != nil {
		return malformed(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return coursegen.Errorf(coursegen.EINVALID, "expected %s", what)
	}
	return nil
}

func indexOf(rec coursegen.Record, key string) int {
	for i, f := range rec {
		if f.Key == key {
			return i
		}
	}
	return -1
}

func malformed(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return coursegen.Errorf(coursegen.EINVALID, "malformed JSON: unexpected end of input")
	}
	return coursegen.Errorf(coursegen.EINVALID, "malformed JSON: %v", err)
}
