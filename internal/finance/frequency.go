// Package finance implements the pure calculation engine behind the dashboard:
// frequency normalization, group aggregation with category breakdowns, composite
// metrics, and period bucketing for the wealth history. Everything in this
// package is a pure function of its inputs; data loading lives in the
// repository and service layers.
package finance

// Frequency describes how often a financial record repeats.
type Frequency string

// The four recognized record frequencies.
const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyYearly  Frequency = "yearly"
	FrequencyOneTime Frequency = "one-time"
)

// WeeksPerMonth is the factor used to convert weekly amounts to a monthly
// equivalent (52 weeks / 12 months).
const WeeksPerMonth = 4.33

// Valid reports whether f is one of the four recognized frequencies.
// Rows with anything else are still normalized (see MonthlyEquivalent),
// but validation layers should reject them at the edge.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyWeekly, FrequencyYearly, FrequencyOneTime:
		return true
	}
	return false
}

// ParseFrequency validates a raw frequency string.
func ParseFrequency(raw string) (Frequency, error) {
	f := Frequency(raw)
	if !f.Valid() {
		return "", ErrUnknownFrequency
	}
	return f, nil
}
