package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mathindex"
	"github.com/fwojciec/mathindex/gomarkdown"
	"github.com/fwojciec/mathindex/ipynb"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing.
	Reader    mathindex.NotebookReader
	Extractor mathindex.MathExtractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Reader:    ipynb.NewReader(),
		Extractor: gomarkdown.NewExtractor(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mathindex"),
		kong.Description("List the math found in Jupyter notebooks."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    newLogger(cli.Verbose, stderr),
		Reader:    m.Reader,
		Extractor: m.Extractor,
	}

	return cli.Run(deps)
}

// newLogger returns a debug level text logger on w when verbose is set and a
// logger that discards everything otherwise.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
