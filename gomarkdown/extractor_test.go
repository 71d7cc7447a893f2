package gomarkdown_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/mathindex/gomarkdown"
	"github.com/stretchr/testify/assert"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts inline math", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("Some text $x^2$ more text")

		assert.Equal(t, []string{"$x^2$"}, got)
	})

	t.Run("extracts several inline spans in one paragraph", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("Let $a$ and $b$ be reals.")

		assert.Equal(t, []string{"$a$", "$b$"}, got)
	})

	t.Run("extracts block math", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("$$a+b$$")

		assert.Equal(t, []string{"$$a+b$$"}, got)
	})

	t.Run("extracts multiline block math", func(t *testing.T) {
		t.Parallel()

		markdown := "Before.\n\n$$\n\\int_0^1 f(x) dx\n$$\n\nAfter."

		got := gomarkdown.NewExtractor().Extract(markdown)

		assert.Equal(t, []string{"$$\n\\int_0^1 f(x) dx\n$$"}, got)
	})

	t.Run("extracts display math inside a paragraph", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("where $$x = 1$$ holds")

		assert.Equal(t, []string{"$$x = 1$$"}, got)
	})

	t.Run("extracts latex environment", func(t *testing.T) {
		t.Parallel()

		markdown := "\\begin{equation}\nE = mc^2\n\\end{equation}"

		got := gomarkdown.NewExtractor().Extract(markdown)

		assert.Equal(t, []string{"\\begin{equation}\nE = mc^2\n\\end{equation}"}, got)
	})

	t.Run("extracts starred environment", func(t *testing.T) {
		t.Parallel()

		markdown := "\\begin{align*}a &= b\\end{align*}"

		got := gomarkdown.NewExtractor().Extract(markdown)

		assert.Equal(t, []string{"\\begin{align*}a &= b\\end{align*}"}, got)
	})

	t.Run("extracts environment spanning blank lines", func(t *testing.T) {
		t.Parallel()

		markdown := "\\begin{align}\na = b\n\nc = d\n\\end{align}"

		got := gomarkdown.NewExtractor().Extract(markdown)

		assert.Equal(t, []string{"\\begin{align}\na = b\n\nc = d\n\\end{align}"}, got)
	})

	t.Run("extracts environment inside a paragraph", func(t *testing.T) {
		t.Parallel()

		markdown := "where \\begin{equation}x = y\\end{equation} holds"

		got := gomarkdown.NewExtractor().Extract(markdown)

		assert.Equal(t, []string{"\\begin{equation}x = y\\end{equation}"}, got)
	})

	t.Run("reports bracketed inline math with dollar delimiters", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("Let \\\\(x\\\\) be real.")

		assert.Equal(t, []string{"$x$"}, got)
	})

	t.Run("reports bracketed display math with double dollar delimiters", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("\\\\[y\\\\]")

		assert.Equal(t, []string{"$$y$$"}, got)
	})

	t.Run("extracts bracketed display math inside a paragraph", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("so \\\\[a = b\\\\] follows")

		assert.Equal(t, []string{"$$a = b$$"}, got)
	})

	t.Run("extracts bracketed display math spanning blank lines", func(t *testing.T) {
		t.Parallel()

		markdown := "\\\\[\na = b\n\nc = d\n\\\\]"

		got := gomarkdown.NewExtractor().Extract(markdown)

		assert.Equal(t, []string{"$$\na = b\n\nc = d\n$$"}, got)
	})

	t.Run("ignores singly escaped brackets", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("Just \\(x\\) and \\[y\\] text.")

		assert.Empty(t, got)
	})

	t.Run("ignores environments with capitalized names", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("\\begin{Equation}X\\end{Equation}")

		assert.Empty(t, got)
	})

	t.Run("numbers bracketed math in document order", func(t *testing.T) {
		t.Parallel()

		markdown := "$a$ then \\\\(b\\\\)\n\n\\\\[c\\\\]\n\nand $d$"

		got := gomarkdown.NewExtractor().Extract(markdown)

		assert.Equal(t, []string{"$a$", "$b$", "$$c$$", "$d$"}, got)
	})

	t.Run("keeps document order across constructs", func(t *testing.T) {
		t.Parallel()

		markdown := "Inline $a$ first.\n\n" +
			"$$b$$\n\n" +
			"\\begin{equation}c\\end{equation}\n\n" +
			"Then $d$."

		got := gomarkdown.NewExtractor().Extract(markdown)

		assert.Equal(t, []string{"$a$", "$$b$$", "\\begin{equation}c\\end{equation}", "$d$"}, got)
	})

	t.Run("finds math in headings and list items", func(t *testing.T) {
		t.Parallel()

		markdown := "# Title $t$\n\n- item $i$\n- item $j$"

		got := gomarkdown.NewExtractor().Extract(markdown)

		assert.Equal(t, []string{"$t$", "$i$", "$j$"}, got)
	})

	t.Run("ignores code spans", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("`$x$` is code")

		assert.Empty(t, got)
	})

	t.Run("ignores fenced code", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("```\n$x$\n```")

		assert.Empty(t, got)
	})

	t.Run("returns nothing for unclosed math", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("costs $5 today")

		assert.Empty(t, got)
	})

	t.Run("returns nothing for unclosed environment", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("\\begin{equation} x")

		assert.Empty(t, got)
	})

	t.Run("returns nothing for plain markdown", func(t *testing.T) {
		t.Parallel()

		got := gomarkdown.NewExtractor().Extract("# Heading\n\nJust *text*.")

		assert.Empty(t, got)
	})

	t.Run("returns nothing for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, gomarkdown.NewExtractor().Extract(""))
		assert.Empty(t, gomarkdown.NewExtractor().Extract("  \n\t"))
	})

	t.Run("returns one span per construct", func(t *testing.T) {
		t.Parallel()

		var parts, want []string
		for i := range 3 {
			n := string(rune('a' + i))
			parts = append(parts, "$$"+n+"$$", "Text $"+n+"$ text.", "\\begin{equation}"+n+"\\end{equation}")
			want = append(want, "$$"+n+"$$", "$"+n+"$", "\\begin{equation}"+n+"\\end{equation}")
		}

		got := gomarkdown.NewExtractor().Extract(strings.Join(parts, "\n\n"))

		assert.Equal(t, want, got)
	})
}
