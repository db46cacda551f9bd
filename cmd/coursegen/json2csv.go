package main

import (
	"bytes"
	"fmt"

	"github.com/fwojciec/coursegen"
)

// Run executes the json2csv command.
func (c *JSON2CSVCmd) Run(deps *Dependencies) error {
	data, err := deps.Store.ReadFile(deps.Ctx, c.Input)
	if err != nil {
		return fail(deps, err)
	}

	if c.Repair {
		repaired, err := deps.Repairer.Repair(string(data))
		if err != nil {
			return fail(deps, err)
		}
		data = []byte(repaired)
	}

	records, err := deps.Records.DecodeRecords(bytes.NewReader(data))
	if err != nil {
		if !c.Repair && coursegen.ErrorCode(err) == coursegen.EINVALID {
			fmt.Fprintln(deps.Stderr, "Hint: use --repair to fix quotes, trailing commas and similar mistakes")
		}
		return fail(deps, err)
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No data found in input file.")
		return nil
	}

	table, err := coursegen.RecordsToTable(records)
	if err != nil {
		return fail(deps, err)
	}

	var buf bytes.Buffer
	if err := deps.Writer.WriteTable(&buf, table); err != nil {
		return fail(deps, err)
	}
	if _, err := deps.Store.WriteFile(deps.Ctx, c.Output, buf.Bytes()); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Successfully converted %s to %s\n", c.Input, c.Output)
	return nil
}
