// Package gomarkdown implements math extraction on top of gomarkdown's
// markdown parser and its MathJax extension.
package gomarkdown

import (
	"strings"

	"github.com/fwojciec/mathindex"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// Ensure Extractor implements mathindex.MathExtractor at compile time.
var _ mathindex.MathExtractor = (*Extractor)(nil)

// Extractor finds block math, inline math and LaTeX environments in markdown.
// Bracketed math, \\(...\\) and \\[...\\], is reported as $...$ and $$...$$.
type Extractor struct {
	extensions parser.Extensions
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		extensions: parser.CommonExtensions | parser.MathJax,
	}
}

// Extract parses markdown and returns its math spans in document order.
func (e *Extractor) Extract(source string) []string {
	if strings.TrimSpace(source) == "" {
		return nil
	}

	doc := markdown.Parse([]byte(source), e.newParser())
	return MathSpans(doc)
}

// newParser returns a parser with the math grammar rules installed.
// Parsers keep state between blocks and cannot be reused.
func (e *Extractor) newParser() *parser.Parser {
	p := parser.NewWithExtensions(e.extensions)
	p.Opts.ParserHook = blockHook

	dollar := p.RegisterInline('$', nil)
	p.RegisterInline('$', displayMathInline(dollar))

	backslash := p.RegisterInline('\\', nil)
	p.RegisterInline('\\', backslashInline(backslash))

	return p
}

// MathSpans walks a parsed document and returns its math nodes rendered back
// to their markup form.
func MathSpans(doc ast.Node) []string {
	var spans []string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}

		switch n := node.(type) {
		case *ast.MathBlock:
			spans = append(spans, "$$"+blockLiteral(n)+"$$")
			return ast.SkipChildren
		case *ast.Math:
			spans = append(spans, "$"+string(n.Literal)+"$")
		case *Environment:
			spans = append(spans, n.String())
		}
		return ast.GoToNext
	})
	return spans
}

// blockLiteral returns the body of a math block.
func blockLiteral(n *ast.MathBlock) string {
	if len(n.Literal) > 0 {
		return string(n.Literal)
	}

	var sb strings.Builder
	for _, child := range n.Children {
		if leaf := child.AsLeaf(); leaf != nil {
			sb.Write(leaf.Literal)
		}
	}
	return sb.String()
}
