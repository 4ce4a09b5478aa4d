package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/caportal/prorate-calculator/internal/domain"
)

// ConsoleFormatter renders the calculator's result panel as plain text, one block per entry.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.ProrationReport) ([]byte, error) {
	var buf bytes.Buffer
	if report.Title != "" {
		fmt.Fprintln(&buf, report.Title)
		fmt.Fprintln(&buf, "================================")
		fmt.Fprintln(&buf)
	}

	multi := len(report.Entries) > 1
	for i, e := range report.Entries {
		if multi {
			fmt.Fprintf(&buf, "[%d] %s\n", i+1, e.Label(i))
		}
		if !e.OK() {
			fmt.Fprintln(&buf, "Error")
			fmt.Fprintln(&buf, ErrorMessage(e.Err))
			fmt.Fprintln(&buf)
			continue
		}
		r := e.Result
		fmt.Fprintln(&buf, "Calculation Results (for Start Month):")
		tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Days in Subscription Start Month:\t%d\n", r.DaysInStartMonth)
		fmt.Fprintf(tw, "  Daily Subscription Cost:\t%s\n", FormatCurrency(r.DailyCost))
		fmt.Fprintf(tw, "  Days Used (in start month):\t%d\n", r.DaysUsed)
		fmt.Fprintf(tw, "  Prorated Cost (for used days):\t%s\n", FormatCurrency(r.ProratedCost))
		fmt.Fprintf(tw, "  Prorated Amount Remaining:\t%s\n", FormatCurrency(r.ProratedRemaining))
		if err := tw.Flush(); err != nil {
			return nil, err
		}
		if r.CappedToStartMonth {
			fmt.Fprintln(&buf, "  Note: the calculation date is after the start month; only the start month is prorated.")
		}
		fmt.Fprintln(&buf)
	}

	if multi {
		s := Summarize(report)
		fmt.Fprintf(&buf, "Calculated: %d  Rejected: %d  Total Prorated: %s  Total Remaining: %s\n",
			s.Calculated, s.Rejected, FormatCurrency(s.TotalProratedCost), FormatCurrency(s.TotalProratedRemaining))
	}
	return buf.Bytes(), nil
}
