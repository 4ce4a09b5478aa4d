package output

import (
	"time"

	json "github.com/goccy/go-json"

	"github.com/caportal/prorate-calculator/internal/domain"
)

// ReportView is the serialized form of a whole report.
type ReportView struct {
	Title       string      `json:"title,omitempty"`
	GeneratedAt time.Time   `json:"generated_at"`
	Entries     []EntryView `json:"entries"`
}

// NewReportView converts every entry of a report.
func NewReportView(report *domain.ProrationReport) ReportView {
	v := ReportView{
		Title:       report.Title,
		GeneratedAt: report.GeneratedAt,
		Entries:     make([]EntryView, 0, len(report.Entries)),
	}
	for _, e := range report.Entries {
		v.Entries = append(v.Entries, NewEntryView(e))
	}
	return v
}

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(report *domain.ProrationReport) ([]byte, error) {
	return json.MarshalIndent(NewReportView(report), "", "  ")
}
