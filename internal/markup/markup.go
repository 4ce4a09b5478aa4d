// Package markup tokenizes the lightweight formatting used in portal copy:
// **bold** runs, bare http(s) URLs, and video placeholders.
package markup

import (
	"net/url"
	"regexp"
	"strings"
)

// Kind identifies a span type.
type Kind string

const (
	Plain       Kind = "plain"
	Bold        Kind = "bold"
	Link        Kind = "link"
	Placeholder Kind = "placeholder"
)

// Span is one tokenized run of a line. For links Text is the display label and
// URL the target; for placeholders Text is the video title (empty for a bare
// "[Link to Video]").
type Span struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// Line is one line of a document; list items had a leading "- " marker.
type Line struct {
	ListItem bool   `json:"list_item,omitempty"`
	Spans    []Span `json:"spans"`
}

var linePattern = regexp.MustCompile(
	`\*\*(.*?)\*\*` +
		`|https?://\S+` +
		`|\(\s*Placeholder for video:\s*"([^"]+)"(?: - \[\s*Link to Video\s*\])?\s*\)` +
		`|\[\s*Link to Video\s*\]`)

var listItemPattern = regexp.MustCompile(`^\s*-\s+(.*)$`)

// trailing punctuation that ends a sentence rather than the URL
const urlTrailers = ".,;:!?)"

// Tokenize splits a single line into spans. Adjacent plain text is never split.
func Tokenize(line string) []Span {
	var spans []Span
	last := 0
	for _, m := range linePattern.FindAllStringSubmatchIndex(line, -1) {
		start, end := m[0], m[1]
		if start > last {
			spans = appendPlain(spans, line[last:start])
		}
		full := line[start:end]
		switch {
		case m[2] >= 0:
			spans = append(spans, Span{Kind: Bold, Text: line[m[2]:m[3]]})
		case strings.HasPrefix(full, "http"):
			target := strings.TrimRight(full, urlTrailers)
			spans = append(spans, Span{Kind: Link, Text: LinkLabel(target), URL: target})
			if rest := full[len(target):]; rest != "" {
				spans = appendPlain(spans, rest)
			}
		case m[4] >= 0:
			spans = append(spans, Span{Kind: Placeholder, Text: line[m[4]:m[5]]})
		default:
			spans = append(spans, Span{Kind: Placeholder})
		}
		last = end
	}
	if last < len(line) {
		spans = appendPlain(spans, line[last:])
	}
	return spans
}

func appendPlain(spans []Span, text string) []Span {
	if n := len(spans); n > 0 && spans[n-1].Kind == Plain {
		spans[n-1].Text += text
		return spans
	}
	return append(spans, Span{Kind: Plain, Text: text})
}

// Parse tokenizes multi-line text, recognising "- item" list lines.
func Parse(text string) []Line {
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		if m := listItemPattern.FindStringSubmatch(l); m != nil {
			lines = append(lines, Line{ListItem: true, Spans: Tokenize(m[1])})
			continue
		}
		lines = append(lines, Line{Spans: Tokenize(l)})
	}
	return lines
}

// LinkLabel is the display text for a URL.
func LinkLabel(raw string) string {
	host := raw
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		host = u.Hostname()
	}
	switch {
	case strings.Contains(host, "scribehow.com"):
		return "Scribe Guide"
	case strings.Contains(host, "share.vidyard.com"):
		return "Vidyard Video"
	}
	return "Link"
}
