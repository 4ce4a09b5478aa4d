package main

import (
	"fmt"
	"io"
	"os"

	"github.com/caportal/prorate-calculator/internal/calculation"
	"github.com/caportal/prorate-calculator/internal/domain"
	"github.com/caportal/prorate-calculator/internal/output"
)

var referenceRequests = []domain.ProrationRequest{
	{Name: "leap february, day one", TotalMonthlyCost: "50", StartDate: "2024-02-01", CalculationDate: "2024-02-01"},
	{Name: "leap february, second half", TotalMonthlyCost: "50", StartDate: "2024-02-15", CalculationDate: "2024-02-29"},
	{Name: "january, after the start month", TotalMonthlyCost: "100", StartDate: "2023-01-10", CalculationDate: "2023-03-05"},
	{Name: "thirds", TotalMonthlyCost: "10", StartDate: "2023-04-01", CalculationDate: "2023-04-10"},
	{Name: "calculation before start", TotalMonthlyCost: "50", StartDate: "2024-05-10", CalculationDate: "2024-05-01"},
}

// Prints the reference prorations through the engine, one line each, for eyeballing rounding changes.
func main() {
	run(os.Stdout, os.Args[1:])
}

func run(w io.Writer, args []string) {
	ce := calculation.NewProrationEngine()

	for _, req := range referenceRequests {
		res, err := ce.CalculateRequest(req)
		if err != nil {
			fmt.Fprintf(w, "%-32s %s\n", req.Name, output.ErrorMessage(err))
			continue
		}
		fmt.Fprintf(w, "%-32s days=%d daily=%s used=%d prorated=%s remaining=%s capped=%t\n",
			req.Name,
			res.DaysInStartMonth,
			res.DailyCost.StringFixed(3),
			res.DaysUsed,
			res.ProratedCost.StringFixed(3),
			res.ProratedRemaining.StringFixed(3),
			res.CappedToStartMonth,
		)
	}

	if len(args) > 0 && args[0] == "-float" {
		res, err := ce.CalculateFloat(50, "2024-02-01", "2024-02-15")
		if err != nil {
			fmt.Fprintln(w, err)
			return
		}
		fmt.Fprintf(w, "float path: prorated=%s\n", res.ProratedCost.StringFixed(3))
	}
}
