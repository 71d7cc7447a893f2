// Package ipynb decodes notebook JSON documents into mathindex types.
package ipynb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/fwojciec/mathindex"
	"github.com/gabriel-vasile/mimetype"
)

// Ensure Reader implements mathindex.NotebookReader at compile time.
var _ mathindex.NotebookReader = (*Reader)(nil)

// Supported notebook format range. Version 3 documents are upgraded to
// version 4 on read.
var (
	minVersion = semver.MustParse("3.0.0")
	v4Version  = semver.MustParse("4.0.0")
	maxVersion = semver.MustParse("5.0.0")
)

// Reader decodes notebook documents.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadNotebook decodes a notebook document from r.
func (r *Reader) ReadNotebook(rd io.Reader) (*mathindex.Notebook, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read notebook: %w", err)
	}

	var header struct {
		Format      int `json:"nbformat"`
		FormatMinor int `json:"nbformat_minor"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, notNotebook(data, err)
	}

	v, err := semver.NewVersion(strconv.Itoa(header.Format) + "." + strconv.Itoa(header.FormatMinor))
	if err != nil {
		return nil, mathindex.Errorf(mathindex.EINVALID, "invalid nbformat version %d.%d", header.Format, header.FormatMinor)
	}
	if v.LessThan(minVersion) || !v.LessThan(maxVersion) {
		return nil, mathindex.Errorf(mathindex.EINVALID, "unsupported nbformat version %s", v.Original())
	}

	var cells []*mathindex.Cell
	if v.LessThan(v4Version) {
		cells, err = decodeV3(data)
	} else {
		cells, err = decodeV4(data)
	}
	if err != nil {
		return nil, notNotebook(data, err)
	}

	return &mathindex.Notebook{Cells: cells}, nil
}

// notNotebook reports content that does not decode as a notebook. The
// detected content type decides how much of the decoder error is shown:
// binary content is rejected outright, JSON is reported as a malformed
// notebook and any other text names its type.
func notNotebook(data []byte, err error) error {
	mtype := mimetype.Detect(data)
	switch {
	case !isText(mtype):
		return mathindex.Errorf(mathindex.EINVALID, "binary content (%s) is not a notebook document", mtype.String())
	case mtype.Is("application/json"):
		return mathindex.Errorf(mathindex.EINVALID, "malformed notebook: %v", err)
	default:
		return mathindex.Errorf(mathindex.EINVALID, "not a notebook document (detected %s): %v", mtype.String(), err)
	}
}

// isText reports whether m is text/plain or one of its descendants.
func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// multiline is a notebook string, stored either as one string or as a list
// of lines.
type multiline string

func (m *multiline) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = multiline(s)
		return nil
	}

	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}
	*m = multiline(strings.Join(lines, ""))
	return nil
}

// mimeBundle maps MIME types to content of any JSON shape.
type mimeBundle map[string]json.RawMessage

// strings converts bundle values to text. Strings and lists of strings are
// joined; any other value keeps its compact JSON form.
func (b mimeBundle) strings() map[string]string {
	if len(b) == 0 {
		return nil
	}

	out := make(map[string]string, len(b))
	for mime, raw := range b {
		out[mime] = rawText(raw)
	}
	return out
}

func rawText(raw json.RawMessage) string {
	var m multiline
	if err := json.Unmarshal(raw, &m); err == nil {
		return string(m)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
