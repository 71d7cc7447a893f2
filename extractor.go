package mathindex

// MathExtractor finds math spans in markdown text.
type MathExtractor interface {
	// Extract returns the math spans found in markdown, in document order.
	// Each span keeps its original delimiters: $$...$$ for block math,
	// $...$ for inline math and \begin{name}...\end{name} for LaTeX
	// environments. Text without math yields no spans.
	Extract(markdown string) []string
}
