package domain

import (
	"bytes"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is a monthly charge exactly as the user entered it. It accepts both
// JSON/YAML strings and bare numbers so that "50.00" and 50.00 decode alike.
type Amount string

// UnmarshalJSON accepts a JSON string, number or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

// UnmarshalYAML keeps the scalar text verbatim, whatever tag YAML resolved it to.
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*a = ""
		return nil
	}
	*a = Amount(value.Value)
	return nil
}

// ProrationRequest carries the three raw form inputs of a proration calculation.
type ProrationRequest struct {
	Name             string `yaml:"name,omitempty" json:"name,omitempty"`
	TotalMonthlyCost Amount `yaml:"total_monthly_cost" json:"total_monthly_cost"`
	StartDate        string `yaml:"start_date" json:"start_date"`
	CalculationDate  string `yaml:"calculation_date" json:"calculation_date"`
}

// ProrationInput is a validated request: a positive monthly charge and two UTC calendar days.
type ProrationInput struct {
	TotalMonthlyCost decimal.Decimal
	StartDate        time.Time
	CalculationDate  time.Time
}

// ProrationResult is the breakdown of a monthly charge over the days used in the start month.
// Money fields are rounded to the nearest tenth of a cent.
type ProrationResult struct {
	DaysInStartMonth  int             `yaml:"days_in_start_month" json:"days_in_start_month"`
	DailyCost         decimal.Decimal `yaml:"daily_cost" json:"daily_cost"`
	DaysUsed          int             `yaml:"days_used" json:"days_used"`
	ProratedCost      decimal.Decimal `yaml:"prorated_cost" json:"prorated_cost"`
	ProratedRemaining decimal.Decimal `yaml:"prorated_remaining" json:"prorated_remaining"`

	// CappedToStartMonth is set when the calculation date lies after the start
	// month; DaysUsed then stops at the last day of the start month.
	CappedToStartMonth bool `yaml:"capped_to_start_month" json:"capped_to_start_month"`
}
