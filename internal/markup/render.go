package markup

import (
	"html"
	"strings"
)

// RenderText flattens parsed text for terminals. Links print as "Label <url>".
func RenderText(text string) string {
	var b strings.Builder
	for i, line := range Parse(text) {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line.ListItem {
			b.WriteString("  • ")
		}
		for _, s := range line.Spans {
			writeTextSpan(&b, s)
		}
	}
	return b.String()
}

func writeTextSpan(b *strings.Builder, s Span) {
	switch s.Kind {
	case Link:
		b.WriteString(s.Text + " <" + s.URL + ">")
	case Placeholder:
		if s.Text == "" {
			b.WriteString("(video link placeholder)")
			return
		}
		b.WriteString(`(Placeholder for video: ` + s.Text + `)`)
	default:
		b.WriteString(s.Text)
	}
}

// RenderHTML renders parsed text as an HTML fragment. Consecutive list items
// are grouped into one <ul>; other non-blank lines are followed by <br>.
func RenderHTML(text string) string {
	lines := Parse(text)
	var b strings.Builder
	inList := false
	for i, line := range lines {
		if line.ListItem {
			if !inList {
				b.WriteString("<ul>")
				inList = true
			}
			b.WriteString("<li>")
			writeHTMLSpans(&b, line.Spans)
			b.WriteString("</li>")
			continue
		}
		if inList {
			b.WriteString("</ul>")
			inList = false
		}
		writeHTMLSpans(&b, line.Spans)
		if i < len(lines)-1 && !blank(line) {
			b.WriteString("<br>")
		}
	}
	if inList {
		b.WriteString("</ul>")
	}
	return b.String()
}

func writeHTMLSpans(b *strings.Builder, spans []Span) {
	for _, s := range spans {
		switch s.Kind {
		case Bold:
			b.WriteString("<strong>" + html.EscapeString(s.Text) + "</strong>")
		case Link:
			b.WriteString(`<a href="` + html.EscapeString(s.URL) + `" target="_blank" rel="noopener noreferrer">` + html.EscapeString(s.Text) + "</a>")
		case Placeholder:
			if s.Text == "" {
				b.WriteString("<em> (video link placeholder)</em>")
				continue
			}
			b.WriteString("<em>(Placeholder for video: " + html.EscapeString(s.Text) + ")</em>")
		default:
			b.WriteString(html.EscapeString(s.Text))
		}
	}
}

func blank(line Line) bool {
	for _, s := range line.Spans {
		if s.Kind != Plain || strings.TrimSpace(s.Text) != "" {
			return false
		}
	}
	return true
}
