package model

import "time"

// SeedPoint is one precomputed chart point from a seed document.
type SeedPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// ChartSeed holds precomputed history points and summary statistics,
// used to back the chart before the portfolio has any history of its own.
type ChartSeed struct {
	Points []SeedPoint `json:"points"`
	Mean   float64     `json:"mean"`
	Min    float64     `json:"min"`
	Max    float64     `json:"max"`
}

// UserDirectory maps user IDs to display names for the console greeting.
type UserDirectory struct {
	Users map[string]string `json:"users"`
}
