package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/coursegen"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Store     coursegen.FileStore
	Tokenizer coursegen.Tokenizer
	Locator   coursegen.SectionLocator
	Lister    coursegen.SectionLister
	Reader    coursegen.TableReader
	Writer    coursegen.TableWriter
	Records   coursegen.RecordDecoder
	Repairer  coursegen.Repairer
	Previewer coursegen.Previewer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir     string `short:"C" default:"." env:"COURSEGEN_DIR" help:"Base directory for relative file paths"`
	Verbose bool   `short:"v" env:"COURSEGEN_VERBOSE" help:"Log file operations to stderr"`
	Strict  bool   `help:"Exit with status 1 when a command fails"`

	Extract  ExtractCmd  `cmd:"" help:"Extract the schedule table from the host HTML into CSV"`
	Schedule ScheduleCmd `cmd:"" help:"Regenerate the schedule section from CSV"`
	Readings ReadingsCmd `cmd:"" help:"Regenerate the reading list section from CSV"`
	JSON2CSV JSON2CSVCmd `cmd:"" name:"json2csv" help:"Convert a JSON array of objects to CSV"`
	Sections SectionsCmd `cmd:"" help:"List the identified sections of the host HTML"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	HTML     string `short:"i" default:"index.html" env:"COURSEGEN_HTML" help:"Host HTML document"`
	Output   string `short:"o" default:"schedule.csv" help:"CSV file to write"`
	Section  string `default:"schedule" help:"Id of the section holding the schedule"`
	RowClass string `default:"schedule-row" help:"Class marking schedule rows"`
}

// ScheduleCmd is the "schedule" subcommand.
type ScheduleCmd struct {
	CSV     string `short:"c" default:"schedule.csv" help:"Schedule CSV file"`
	HTML    string `short:"i" default:"index.html" env:"COURSEGEN_HTML" help:"Host HTML document to update"`
	Preview bool   `short:"p" help:"Print the section as Markdown instead of updating the document"`
}

// ReadingsCmd is the "readings" subcommand.
type ReadingsCmd struct {
	CSV     string `short:"c" default:"ai_studio_data.csv" help:"Readings CSV file"`
	HTML    string `short:"i" default:"index.html" env:"COURSEGEN_HTML" help:"Host HTML document to update"`
	Preview bool   `short:"p" help:"Print the section as Markdown instead of updating the document"`
}

// JSON2CSVCmd is the "json2csv" subcommand.
type JSON2CSVCmd struct {
	Input  string `short:"i" default:"ai_studio_code.txt" help:"JSON file holding an array of objects"`
	Output string `short:"o" default:"ai_studio_data.csv" help:"CSV file to write"`
	Repair bool   `short:"r" help:"Repair malformed JSON before converting"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	HTML string `short:"i" default:"index.html" env:"COURSEGEN_HTML" help:"Host HTML document"`
}

// fail prints the error's user-facing message and returns the error.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", coursegen.ErrorMessage(err))
	return err
}
