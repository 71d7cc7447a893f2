package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/fwojciec/mathindex"
	"github.com/fwojciec/mathindex/billy"
	mislog "github.com/fwojciec/mathindex/slog"
	"github.com/go-git/go-billy/v5/osfs"
)

// noRepo stands in for the repository id in JSON record URLs when no
// repository is given.
const noRepo = "-----"

// Run scans the path and prints the math it contains.
func (c *CLI) Run(deps *Dependencies) error {
	info, err := os.Stat(c.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return mathindex.Errorf(mathindex.ENOTFOUND, "No such file or directory: %s", c.Path)
	} else if err != nil {
		return fmt.Errorf("stat %s: %w", c.Path, err)
	}

	l := c.listing(deps.Stdout)

	if info.IsDir() {
		walker := mislog.NewLoggingWalker(billy.NewWalker(osfs.New(c.Path), c.scanner(deps, c.Path)), deps.Logger)
		if err := listDirectory(l, walker.Walk(".")); err != nil {
			return err
		}
	} else {
		dir, name := filepath.Split(c.Path)
		if dir == "" {
			dir = "."
		}
		occurrences, err := c.scanner(deps, dir).Scan(name)
		if err != nil {
			return err
		}
		for o := range occurrences {
			if err := l.Occurrence(o); err != nil {
				return err
			}
		}
	}

	return l.Close()
}

func (c *CLI) scanner(deps *Dependencies, root string) mathindex.NotebookScanner {
	extractor := mislog.NewLoggingExtractor(deps.Extractor, deps.Logger)
	scanner := billy.NewScanner(osfs.New(root), deps.Reader, extractor)
	return mislog.NewLoggingScanner(scanner, deps.Logger)
}

func (c *CLI) listing(w io.Writer) listing {
	if c.Format == "json" {
		repo := c.GHRepo
		if repo == "" {
			repo = noRepo
		}
		return &jsonListing{w: w, repo: repo, records: []mathindex.Record{}}
	}
	return &textListing{w: w, repo: c.GHRepo}
}

// listDirectory feeds the results of a directory walk into l, starting a new
// notebook whenever the path changes.
func listDirectory(l listing, occurrences iter.Seq2[mathindex.FileOccurrence, error]) error {
	var last string
	for fo, err := range occurrences {
		if err != nil {
			return err
		}
		if fo.Path != last {
			if err := l.Notebook(fo.Path); err != nil {
				return err
			}
			last = fo.Path
		}
		if err := l.Occurrence(fo.Occurrence); err != nil {
			return err
		}
	}
	return nil
}

// listing writes scan results in one output format.
type listing interface {
	// Notebook starts the results of the notebook at relPath.
	Notebook(relPath string) error
	Occurrence(o mathindex.Occurrence) error
	Close() error
}

// textListing prints one line per occurrence, grouped under a header per
// notebook.
type textListing struct {
	w       io.Writer
	repo    string
	started bool
}

func (l *textListing) Notebook(relPath string) error {
	if l.started {
		if _, err := fmt.Fprintln(l.w); err != nil {
			return err
		}
	}
	l.started = true
	_, err := fmt.Fprintln(l.w, mathindex.FormatHeader(l.repo, relPath))
	return err
}

func (l *textListing) Occurrence(o mathindex.Occurrence) error {
	_, err := fmt.Fprintln(l.w, mathindex.FormatOccurrence(o))
	return err
}

func (l *textListing) Close() error { return nil }

// jsonListing collects index records and writes them as a single JSON array.
type jsonListing struct {
	w       io.Writer
	repo    string
	baseURL string
	records []mathindex.Record
}

func (l *jsonListing) Notebook(relPath string) error {
	l.baseURL = mathindex.ViewerURL(l.repo, relPath)
	return nil
}

func (l *jsonListing) Occurrence(o mathindex.Occurrence) error {
	l.records = append(l.records, mathindex.NewRecord(l.baseURL, o))
	return nil
}

func (l *jsonListing) Close() error {
	enc := json.NewEncoder(l.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(l.records)
}
