package mathindex

import "path/filepath"

// NBViewerURL is the base URL of the notebook viewer for GitHub repositories.
const NBViewerURL = "http://nbviewer.jupyter.org/github/"

// FormatOccurrence formats an occurrence as a single listing line.
func FormatOccurrence(o Occurrence) string {
	return "#" + o.Fragment + ": '" + o.LaTeX + "'"
}

// ViewerURL returns the notebook viewer URL of a file in a GitHub repository.
// The repoID has the form OWNER/REPO and relPath is relative to the
// repository root.
func ViewerURL(repoID, relPath string) string {
	return NBViewerURL + repoID + "/blob/master/" + filepath.ToSlash(relPath)
}

// FormatHeader returns the listing header for a notebook.
// Uses the viewer URL when a repository is given, the bare path otherwise.
func FormatHeader(repoID, relPath string) string {
	if repoID == "" {
		return relPath
	}
	return ViewerURL(repoID, relPath)
}

// Record is a search index entry linking a piece of math to its location.
type Record struct {
	TeX string `json:"tex"`
	URL string `json:"url"`
}

// NewRecord returns the index record of an occurrence in the document at baseURL.
func NewRecord(baseURL string, o Occurrence) Record {
	return Record{
		TeX: o.LaTeX,
		URL: baseURL + "#" + o.Fragment,
	}
}
