package growth

import (
	"math"
	"time"
)

// MeanMonth is the mean Gregorian month: 365.2425/12 days, exactly 2629746s.
// Using the precise average instead of a naive 30 days keeps long-run
// compounding curves from drifting.
const MeanMonth = 2629746 * time.Second

// MinApplied is the smallest growth worth applying: one unit of the
// smallest denomination (one satoshi).
const MinApplied = 1e-8

// ElapsedMonths returns the span between two instants as a fraction of
// the mean Gregorian month. Non-positive spans return 0.
func ElapsedMonths(from, to time.Time) float64 {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return float64(d) / float64(MeanMonth)
}

// Compound returns the growth accrued on balance over elapsedMonths at
// the given monthly rate: balance * ((1+rate)^elapsedMonths - 1).
// Scaling the exponent by elapsed time keeps the curve correct under
// irregular tick timing.
func Compound(balance, monthlyRate, elapsedMonths float64) float64 {
	if balance <= 0 || elapsedMonths <= 0 {
		return 0
	}
	return balance * (math.Pow(1+monthlyRate, elapsedMonths) - 1)
}
