package domain

import (
	"strconv"
	"time"
)

// Batch is the on-disk form of several proration requests, loaded from YAML.
type Batch struct {
	Title        string             `yaml:"title,omitempty" json:"title,omitempty"`
	Calculations []ProrationRequest `yaml:"calculations" json:"calculations"`
}

// ReportEntry is one calculated request: exactly one of Result and Err is set.
type ReportEntry struct {
	Request ProrationRequest `json:"request"`
	Result  *ProrationResult `json:"result,omitempty"`
	Err     error            `json:"-"`
}

// OK reports whether the entry produced a result.
func (e ReportEntry) OK() bool { return e.Err == nil && e.Result != nil }

// Label names the entry for display, falling back to its position.
func (e ReportEntry) Label(index int) string {
	if e.Request.Name != "" {
		return e.Request.Name
	}
	return "Calculation " + strconv.Itoa(index+1)
}

// ProrationReport groups the entries rendered together by an output formatter.
type ProrationReport struct {
	Title       string        `json:"title,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
	Entries     []ReportEntry `json:"entries"`
}

// Failures counts entries that ended in a validation error.
func (r *ProrationReport) Failures() int {
	n := 0
	for _, e := range r.Entries {
		if !e.OK() {
			n++
		}
	}
	return n
}
