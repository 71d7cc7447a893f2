package billy_test

import (
	"iter"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mathindex"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

// newFS returns an in-memory filesystem holding files, keyed by absolute path.
func newFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()

	fsys := memfs.New()
	for path, content := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, util.WriteFile(fsys, path, []byte(content), 0o644))
	}
	return fsys
}

// collect drains a walk, failing the test on error.
func collect(t *testing.T, seq iter.Seq2[mathindex.FileOccurrence, error]) []mathindex.FileOccurrence {
	t.Helper()

	var got []mathindex.FileOccurrence
	for fo, err := range seq {
		require.NoError(t, err)
		got = append(got, fo)
	}
	return got
}

// paths returns the file path of every occurrence.
func paths(occurrences []mathindex.FileOccurrence) []string {
	out := make([]string, 0, len(occurrences))
	for _, o := range occurrences {
		out = append(out, o.Path)
	}
	return out
}
