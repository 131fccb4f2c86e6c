package domain

import "strings"

// Section is one labeled block of the final report.
type Section struct {
	Label string
	Body  string
}

// Report is the ordered, immutable result of a completed job. Section order
// is fixed by the assembler and identical across all inputs.
type Report struct {
	Handle   Handle
	Sections []Section
}

// Render flattens the report into display text. Pure: identical reports
// render to byte-identical strings.
func (r Report) Render() string {
	var b strings.Builder
	for i, s := range r.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if s.Label != "" {
			b.WriteString(s.Label)
			b.WriteString("\n")
		}
		b.WriteString(s.Body)
		b.WriteString("\n")
	}
	return b.String()
}
