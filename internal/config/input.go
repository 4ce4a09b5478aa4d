package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caportal/prorate-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// MaxBatchSize caps the number of calculations accepted from a single file.
const MaxBatchSize = 10000

// InputParser handles parsing of batch calculation files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a batch of proration requests from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Batch, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates batch YAML
func (ip *InputParser) Parse(data []byte) (*domain.Batch, error) {
	var batch domain.Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateBatch(&batch); err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}

	return &batch, nil
}

// ValidateBatch checks the file's shape. Amount and date rules belong to the
// engine and are reported per entry, not here.
func (ip *InputParser) ValidateBatch(batch *domain.Batch) error {
	if len(batch.Calculations) == 0 {
		return fmt.Errorf("no calculations provided")
	}
	if len(batch.Calculations) > MaxBatchSize {
		return fmt.Errorf("too many calculations: %d (max %d)", len(batch.Calculations), MaxBatchSize)
	}

	seen := make(map[string]int, len(batch.Calculations))
	for i, calc := range batch.Calculations {
		name := strings.TrimSpace(calc.Name)
		if name == "" {
			continue
		}
		if prev, exists := seen[name]; exists {
			return fmt.Errorf("calculation %d: duplicate name %q (first used by calculation %d)", i+1, name, prev+1)
		}
		seen[name] = i
	}

	return nil
}

// CreateExampleBatch creates an example batch file covering the common cases
func (ip *InputParser) CreateExampleBatch() *domain.Batch {
	return &domain.Batch{
		Title: "Example prorations",
		Calculations: []domain.ProrationRequest{
			{
				Name:             "Leap February, first day",
				TotalMonthlyCost: "50.00",
				StartDate:        "2024-02-01",
				CalculationDate:  "2024-02-01",
			},
			{
				Name:             "Leap February, second half",
				TotalMonthlyCost: "50.00",
				StartDate:        "2024-02-15",
				CalculationDate:  "2024-02-29",
			},
			{
				Name:             "Calculated after the start month",
				TotalMonthlyCost: "100",
				StartDate:        "2024-01-10",
				CalculationDate:  "2024-03-05",
			},
		},
	}
}

// SaveBatch writes a batch as YAML
func (ip *InputParser) SaveBatch(batch *domain.Batch, filename string) error {
	b, err := yaml.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to encode batch: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
