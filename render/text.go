package render

import (
	"fmt"
	"strings"
)

// Text renders a document for the terminal, one line per block with a
// bar heading whenever the bar index changes.
func Text(doc Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v | %.4g BPM | %v grid", doc.TimeSignature, doc.BPM, doc.Precision)
	if doc.TripletEnabled {
		b.WriteString(" (triplets)")
	}
	b.WriteString("\n")

	var lastBar int64
	for _, block := range doc.Blocks {
		if block.Bar != lastBar {
			fmt.Fprintf(&b, "bar %v\n", block.Bar)
			lastBar = block.Bar
		}
		var notes []string
		for _, n := range block.Notes {
			notes = append(notes, fmt.Sprintf("%v(%v)", n.Name, n.Velocity))
		}
		name := block.DurationName
		if name == "" {
			name = block.Duration + " beats"
		}
		line := fmt.Sprintf("  %-6v %-6v %-22v %v", block.Start, block.Kind, name, strings.Join(notes, " "))
		b.WriteString(strings.TrimRight(line, " "))
		if block.Tied {
			b.WriteString(" ~")
		}
		b.WriteString("\n")
	}
	return b.String()
}
