package main

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/coursegen"
)

// markers returns the extractor configuration for the command's section
// and row class.
func (c *ExtractCmd) markers() coursegen.Markers {
	m := coursegen.ScheduleMarkers
	m.Region = coursegen.MatchID("section", c.Section)
	m.Row = coursegen.MatchClass("div", c.RowClass)
	return m
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	doc, err := deps.Store.ReadFile(deps.Ctx, c.HTML)
	if err != nil {
		return fail(deps, err)
	}

	tokens, err := deps.Tokenizer.Tokenize(bytes.NewReader(doc))
	if err != nil {
		return fail(deps, err)
	}

	table := coursegen.NormalizeRows(c.markers().Extract(tokens), coursegen.ScheduleHeader)

	var buf bytes.Buffer
	if err := deps.Writer.WriteTable(&buf, table); err != nil {
		return fail(deps, err)
	}
	if _, err := deps.Store.WriteFile(deps.Ctx, c.Output, buf.Bytes()); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Successfully wrote %d rows (including header) to %s\n", len(table.Rows)+1, c.Output)
	return nil
}
