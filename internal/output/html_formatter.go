package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/caportal/prorate-calculator/internal/domain"
)

// HTMLFormatter renders a standalone HTML report with one result card per calculation.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"add":  func(i, j int) int { return i + j },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.ProrationReport) ([]byte, error) {
	var buf bytes.Buffer
	type row struct {
		Label string
		domain.ReportEntry
		Message string
	}
	rows := make([]row, 0, len(report.Entries))
	for i, e := range report.Entries {
		rows = append(rows, row{Label: e.Label(i), ReportEntry: e, Message: ErrorMessage(e.Err)})
	}
	data := struct {
		*domain.ProrationReport
		Rows    []row
		Summary Summary
	}{report, rows, Summarize(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
