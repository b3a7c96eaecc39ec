package models

import "math"

// MaxAmountCents is the largest amount a NUMERIC(14,2) column holds.
const MaxAmountCents = 99999999999999

// ToCents converts a decimal amount to integer hundredths, rounding half
// away from zero. Sums are taken in cents so they do not depend on the
// order of the inputs.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts hundredths back to a decimal amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
