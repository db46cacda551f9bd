package main

import (
	"bytes"

	"github.com/fwojciec/coursegen"
)

// Run executes the schedule command.
func (c *ScheduleCmd) Run(deps *Dependencies) error {
	data, err := deps.Store.ReadFile(deps.Ctx, c.CSV)
	if err != nil {
		return fail(deps, err)
	}

	table, err := deps.Reader.ReadTable(bytes.NewReader(data))
	if err != nil {
		return fail(deps, err)
	}

	fragment := coursegen.RenderSchedule(coursegen.ParseSchedule(table))
	return regenerate(deps, c.HTML, "schedule", fragment, c.Preview)
}
