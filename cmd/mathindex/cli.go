package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/mathindex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Reader    mathindex.NotebookReader
	Extractor mathindex.MathExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Path    string `arg:"" optional:"" default:"." help:"Notebook file or directory to scan"`
	GHRepo  string `name:"gh-repo" placeholder:"OWNER/REPO" help:"GitHub repository; print nbviewer URLs instead of paths"`
	Format  string `enum:"text,json" default:"text" help:"Output format (text, json)"`
	Verbose bool   `short:"v" help:"Log scan progress to stderr"`
}
