package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/coursegen"
	"github.com/fwojciec/coursegen/csv"
	"github.com/fwojciec/coursegen/fs"
	"github.com/fwojciec/coursegen/goquery"
	"github.com/fwojciec/coursegen/html"
	"github.com/fwojciec/coursegen/htmltomarkdown"
	"github.com/fwojciec/coursegen/json"
	"github.com/fwojciec/coursegen/jsonrepair"
	cgslog "github.com/fwojciec/coursegen/slog"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	// Failures are reported on stderr by Run; the exit status only
	// reflects them in strict mode.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil && m.Strict {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Strict is set from the --strict flag once arguments are parsed.
	Strict bool
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. Every error it returns
// has already been printed to stderr.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coursegen"),
		kong.Description("Generate course website sections from CSV and JSON sources"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no command specified. Run 'coursegen --help' to see available commands")
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Usage errors abort before kong applies flags, so strict mode is
	// also read from the raw arguments.
	kongCtx, err := parser.Parse(args)
	m.Strict = cli.Strict || strictArg(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return err
	}

	// Wire services into dependencies
	var store coursegen.FileStore = fs.NewFileStore(cli.Dir)
	var locator coursegen.SectionLocator = html.NewSectionLocator()
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		store = cgslog.NewLoggingFileStore(store, logger)
		locator = cgslog.NewLoggingSectionLocator(locator, logger)
	}

	codec := csv.NewTableCodec()
	deps.Store = store
	deps.Tokenizer = html.NewTokenizer()
	deps.Locator = locator
	deps.Lister = goquery.NewSectionLister()
	deps.Reader = codec
	deps.Writer = codec
	deps.Records = json.NewRecordDecoder()
	deps.Repairer = jsonrepair.NewRepairer()
	deps.Previewer = htmltomarkdown.NewPreviewer()

	return kongCtx.Run(deps)
}

// strictArg reports whether args enable --strict before any "--"
// terminator.
func strictArg(args []string) bool {
	for _, arg := range args {
		switch {
		case arg == "--":
			return false
		case arg == "--strict":
			return true
		case strings.HasPrefix(arg, "--strict="):
			v, err := strconv.ParseBool(strings.TrimPrefix(arg, "--strict="))
			return err == nil && v
		}
	}
	return false
}
