package output

import (
	"fmt"
	"io"

	"github.com/caportal/prorate-calculator/internal/domain"
)

// GenerateReport resolves the named formatter and writes the report to path
// (or a timestamped file when path is empty). It returns the path written.
func GenerateReport(report *domain.ProrationReport, format, path string) (string, error) {
	f, err := ResolveFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, report, path)
}

// Render writes the formatted report to w. Used for stdout and HTTP responses.
func Render(w io.Writer, report *domain.ProrationReport, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
