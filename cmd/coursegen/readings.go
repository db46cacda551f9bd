package main

import (
	"bytes"

	"github.com/fwojciec/coursegen"
)

// Run executes the readings command.
func (c *ReadingsCmd) Run(deps *Dependencies) error {
	data, err := deps.Store.ReadFile(deps.Ctx, c.CSV)
	if err != nil {
		return fail(deps, err)
	}

	table, err := deps.Reader.ReadTable(bytes.NewReader(data))
	if err != nil {
		return fail(deps, err)
	}

	fragment := coursegen.RenderReadings(coursegen.ParseReadings(table))
	return regenerate(deps, c.HTML, "readings", fragment, c.Preview)
}
