package crafting

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/CraftPanel_Go/internal/event"
)

// summarize renders the kept, consumed and produced lines of a craft,
// one section per line, skipping empty sections.
func summarize(out *Outcome) string {
	p := message.NewPrinter(language.English)
	title := cases.Title(language.English)

	var b strings.Builder
	writeSection(&b, p, title.String(summaryKept), materialLines(out.Kept))
	writeSection(&b, p, title.String(summaryConsumed), materialLines(out.Consumed))
	writeSection(&b, p, title.String(summaryProduced), productLines(out.Produced))
	return b.String()
}

func writeSection(b *strings.Builder, p *message.Printer, heading string, lines []event.ItemQuantityV1) {
	if len(lines) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(heading)
	b.WriteString(": ")
	for i, l := range lines {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Sprintf("%d × %s", l.Quantity, l.Name))
	}
}
