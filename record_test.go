package coursegen_test

import (
	"testing"

	"github.com/fwojciec/coursegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) coursegen.Value {
	return coursegen.Value{Kind: coursegen.StringValue, Text: s}
}

func TestValue_Cell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value coursegen.Value
		want  string
	}{
		{name: "string", value: str("a, b"), want: "a, b"},
		{name: "number", value: coursegen.Value{Kind: coursegen.NumberValue, Text: "1.50"}, want: "1.50"},
		{name: "bool", value: coursegen.Value{Kind: coursegen.BoolValue, Text: "true"}, want: "true"},
		{name: "null", value: coursegen.Value{Kind: coursegen.NullValue, Text: "null"}, want: ""},
		{name: "object", value: coursegen.Value{Kind: coursegen.ObjectValue, Text: `{"k":1}`}, want: `{"k":1}`},
		{
			name: "list",
			value: coursegen.Value{Kind: coursegen.ListValue, Text: `["x",2,null]`, Items: []coursegen.Value{
				str("x"),
				{Kind: coursegen.NumberValue, Text: "2"},
				{Kind: coursegen.NullValue, Text: "null"},
			}},
			want: "x; 2; null",
		},
		{name: "empty list", value: coursegen.Value{Kind: coursegen.ListValue, Text: `[]`}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.value.Cell())
		})
	}
}

func TestRecordsToTable(t *testing.T) {
	t.Parallel()

	t.Run("uses the first record's keys as header", func(t *testing.T) {
		t.Parallel()

		records := []coursegen.Record{
			{
				{Key: "a", Value: coursegen.Value{Kind: coursegen.NumberValue, Text: "1"}},
				{Key: "key_concepts", Value: coursegen.Value{Kind: coursegen.ListValue, Items: []coursegen.Value{str("x"), str("y")}}},
			},
		}

		table, err := coursegen.RecordsToTable(records)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "key_concepts"}, table.Header)
		assert.Equal(t, [][]string{{"1", "x; y"}}, table.Rows)
	})

	t.Run("places fields by key and leaves missing ones empty", func(t *testing.T) {
		t.Parallel()

		records := []coursegen.Record{
			{{Key: "a", Value: str("1")}, {Key: "b", Value: str("2")}},
			{{Key: "b", Value: str("3")}},
		}

		table, err := coursegen.RecordsToTable(records)

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"1", "2"}, {"", "3"}}, table.Rows)
	})

	t.Run("rejects keys missing from the header", func(t *testing.T) {
		t.Parallel()

		records := []coursegen.Record{
			{{Key: "a", Value: str("1")}},
			{{Key: "a", Value: str("2")}, {Key: "extra", Value: str("3")}},
		}

		_, err := coursegen.RecordsToTable(records)

		assert.Equal(t, coursegen.EINVALID, coursegen.ErrorCode(err))
		assert.Contains(t, coursegen.ErrorMessage(err), `"extra"`)
	})

	t.Run("returns an empty table for no records", func(t *testing.T) {
		t.Parallel()

		table, err := coursegen.RecordsToTable(nil)

		require.NoError(t, err)
		assert.Empty(t, table.Header)
		assert.Empty(t, table.Rows)
	})
}
