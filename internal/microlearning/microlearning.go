// Package microlearning holds the contract-admin onboarding guide: a short
// intro followed by sections (plays and topics) grouped under numbered headings.
package microlearning

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/caportal/prorate-calculator/internal/markup"
)

// Section is one entry of the guide. Level 1 sections are numbered headings;
// level 2 sections are plays or topics under Parent.
type Section struct {
	Slug      string   `json:"slug" yaml:"slug"`
	Title     string   `json:"title" yaml:"title"`
	TOCTitle  string   `json:"toc_title" yaml:"toc_title"`
	Level     int      `json:"level" yaml:"level"`
	Parent    string   `json:"parent,omitempty" yaml:"parent"`
	Objective string   `json:"objective,omitempty" yaml:"objective"`
	WhenToUse string   `json:"when_to_use,omitempty" yaml:"when_to_use"`
	Steps     []string `json:"steps,omitempty" yaml:"steps"`
	Body      string   `json:"body,omitempty" yaml:"body"`
}

// Document is the whole guide in reading order.
type Document struct {
	Intro    string    `yaml:"intro"`
	Sections []Section `yaml:"sections"`
}

//go:embed content.yaml
var content []byte

var doc = mustLoad(content)

func mustLoad(data []byte) Document {
	d, err := load(data)
	if err != nil {
		panic(err)
	}
	return d
}

func load(data []byte) (Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("parse microlearning content: %w", err)
	}
	seen := make(map[string]bool, len(d.Sections))
	for i, s := range d.Sections {
		if s.Slug == "" {
			return Document{}, fmt.Errorf("section %d has no slug", i)
		}
		if seen[s.Slug] {
			return Document{}, fmt.Errorf("duplicate section %q", s.Slug)
		}
		if s.Level != 1 && s.Level != 2 {
			return Document{}, fmt.Errorf("section %q: level must be 1 or 2, got %d", s.Slug, s.Level)
		}
		if s.Parent != "" && !seen[s.Parent] {
			return Document{}, fmt.Errorf("section %q: parent %q must precede it", s.Slug, s.Parent)
		}
		seen[s.Slug] = true
	}
	return d, nil
}

// Intro is the welcome paragraph shown above the guide.
func Intro() string { return doc.Intro }

// Sections returns a copy of every section in reading order.
func Sections() []Section {
	out := make([]Section, len(doc.Sections))
	copy(out, doc.Sections)
	return out
}

// TOCEntry is one line of the table of contents.
type TOCEntry struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Level int    `json:"level"`
}

// TOC lists every section with its short title.
func TOC() []TOCEntry {
	return Search("")
}

// Search filters the table of contents by a case-insensitive substring of
// the short title. An empty term matches everything.
func Search(term string) []TOCEntry {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]TOCEntry, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		if term != "" && !strings.Contains(strings.ToLower(s.TOCTitle), term) {
			continue
		}
		out = append(out, TOCEntry{Slug: s.Slug, Title: s.TOCTitle, Level: s.Level})
	}
	return out
}

// Find looks a section up by slug, ignoring case.
func Find(slug string) (Section, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, s := range doc.Sections {
		if s.Slug == slug {
			return s, true
		}
	}
	return Section{}, false
}

// Children returns the level 2 sections filed under slug.
func Children(slug string) []Section {
	var out []Section
	for _, s := range doc.Sections {
		if s.Parent == slug {
			out = append(out, s)
		}
	}
	return out
}

// SectionView is a section with its text tokenized for rendering.
type SectionView struct {
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Level     int             `json:"level"`
	Parent    string          `json:"parent,omitempty"`
	Objective []markup.Line   `json:"objective,omitempty"`
	WhenToUse []markup.Line   `json:"when_to_use,omitempty"`
	Steps     [][]markup.Line `json:"steps,omitempty"`
	Body      []markup.Line   `json:"body,omitempty"`
}

// NewSectionView tokenizes every text field of s.
func NewSectionView(s Section) SectionView {
	v := SectionView{
		Slug:      s.Slug,
		Title:     s.Title,
		Level:     s.Level,
		Parent:    s.Parent,
		Objective: markup.Parse(s.Objective),
		WhenToUse: markup.Parse(s.WhenToUse),
		Body:      markup.Parse(s.Body),
	}
	for _, step := range s.Steps {
		v.Steps = append(v.Steps, markup.Parse(step))
	}
	return v
}

// View is the whole guide as served to clients.
type View struct {
	Intro    string        `json:"intro"`
	TOC      []TOCEntry    `json:"toc"`
	Sections []SectionView `json:"sections"`
}

// NewView tokenizes the whole guide.
func NewView() View {
	v := View{Intro: doc.Intro, TOC: TOC(), Sections: make([]SectionView, 0, len(doc.Sections))}
	for _, s := range doc.Sections {
		v.Sections = append(v.Sections, NewSectionView(s))
	}
	return v
}

// RenderText formats a section for a terminal: title, objective, when to use,
// body and numbered steps.
func RenderText(s Section) string {
	var b strings.Builder
	b.WriteString(s.Title + "\n")
	b.WriteString(strings.Repeat("=", len([]rune(s.Title))) + "\n")
	if s.Objective != "" {
		b.WriteString("Objective: " + markup.RenderText(s.Objective) + "\n")
	}
	if s.WhenToUse != "" {
		b.WriteString("When to Use: " + markup.RenderText(s.WhenToUse) + "\n")
	}
	if s.Body != "" {
		b.WriteString("\n" + markup.RenderText(s.Body) + "\n")
	}
	if len(s.Steps) > 0 {
		b.WriteString("\nStep-by-Step Guide:\n")
		for i, step := range s.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, markup.RenderText(step))
		}
	}
	return b.String()
}
