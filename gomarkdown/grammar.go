package gomarkdown

import (
	"bytes"
	"regexp"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// Environment is a LaTeX environment such as \begin{equation}...\end{equation}.
// The body is stored in Literal.
type Environment struct {
	ast.Leaf

	Name string
}

// String returns the environment in its markup form.
func (e *Environment) String() string {
	return `\begin{` + e.Name + `}` + string(e.Literal) + `\end{` + e.Name + `}`
}

var environmentStart = regexp.MustCompile(`^\\begin\{([a-z]*\*?)\}`)

// matchEnvironment matches a LaTeX environment at the start of data.
// The body ends at the first \end with the same name. Returns the number of
// bytes consumed, zero when data does not start with a complete environment.
func matchEnvironment(data []byte) (*Environment, int) {
	m := environmentStart.FindSubmatch(data)
	if m == nil {
		return nil, 0
	}

	name := string(m[1])
	end := []byte(`\end{` + name + `}`)
	rest := data[len(m[0]):]
	i := bytes.Index(rest, end)
	if i < 0 {
		return nil, 0
	}

	env := &Environment{Name: name}
	env.Literal = rest[:i]
	return env, len(m[0]) + i + len(end)
}

// blockHook is a parser hook recognizing environments and \\[...\\] display
// math at the start of a block. Up to three spaces of indentation are
// allowed.
func blockHook(data []byte) (ast.Node, []byte, int) {
	indent := 0
	for indent < 3 && indent < len(data) && data[indent] == ' ' {
		indent++
	}

	if env, n := matchEnvironment(data[indent:]); n > 0 {
		return env, nil, indent + n
	}
	if body, n := matchDelimited(data[indent:], bracketDisplayOpen, bracketDisplayClose); n > 0 {
		block := &ast.MathBlock{}
		block.Literal = body
		return block, nil, indent + n
	}
	return nil, nil, 0
}

// Delimiters of bracketed math. Markdown source spells them with a doubled
// backslash, since a single one escapes the bracket.
var (
	bracketInlineOpen   = []byte(`\\(`)
	bracketInlineClose  = []byte(`\\)`)
	bracketDisplayOpen  = []byte(`\\[`)
	bracketDisplayClose = []byte(`\\]`)
)

// backslashInline recognizes environments and bracketed math inside
// paragraphs and falls back to next for any other backslash sequence.
func backslashInline(next parser.InlineParser) parser.InlineParser {
	return func(p *parser.Parser, data []byte, offset int) (int, ast.Node) {
		rest := data[offset:]
		if env, n := matchEnvironment(rest); n > 0 {
			return n, env
		}
		if body, n := matchDelimited(rest, bracketInlineOpen, bracketInlineClose); n > 0 {
			math := &ast.Math{}
			math.Literal = body
			return n, math
		}
		if body, n := matchDelimited(rest, bracketDisplayOpen, bracketDisplayClose); n > 0 {
			block := &ast.MathBlock{}
			block.Literal = body
			return n, block
		}
		if next == nil {
			return 0, nil
		}
		return next(p, data, offset)
	}
}

var displayDelimiter = []byte("$$")

// displayMathInline recognizes $$...$$ inside paragraphs and falls back to
// next for single dollar math.
func displayMathInline(next parser.InlineParser) parser.InlineParser {
	return func(p *parser.Parser, data []byte, offset int) (int, ast.Node) {
		if body, n := matchDelimited(data[offset:], displayDelimiter, displayDelimiter); n > 0 {
			block := &ast.MathBlock{}
			block.Literal = body
			return n, block
		}
		if next == nil {
			return 0, nil
		}
		return next(p, data, offset)
	}
}

// matchDelimited matches a non-empty body between start and end at the
// start of data. Returns the body and the number of bytes consumed, zero
// when there is no match.
func matchDelimited(data, start, end []byte) ([]byte, int) {
	if !bytes.HasPrefix(data, start) {
		return nil, 0
	}
	i := bytes.Index(data[len(start):], end)
	if i <= 0 {
		return nil, 0
	}
	return data[len(start) : len(start)+i], len(start) + i + len(end)
}
