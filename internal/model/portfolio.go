package model

import "time"

// TradeKind distinguishes user deposits from simulated bot trades.
type TradeKind string

const (
	TradeKindDeposit TradeKind = "DEPOSIT"
	TradeKindTrade   TradeKind = "TRADE"
)

// Currency is the display currency preference.
type Currency string

const (
	CurrencyBTC Currency = "BTC"
	CurrencyUSD Currency = "USD"
)

// Snapshot is one point in the balance history log.
type Snapshot struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// TradeRecord is one simulated trade or deposit event.
type TradeRecord struct {
	ID         string    `json:"id"`
	Time       time.Time `json:"time"`
	Kind       TradeKind `json:"kind"`
	Amount     float64   `json:"amount"`
	Profitable *bool     `json:"profitable,omitempty"` // nil for deposits
}

// Portfolio tracks the simulated holding and its bounded logs.
type Portfolio struct {
	Balance        float64       `json:"balance"`
	InitialDeposit float64       `json:"initial_deposit"`
	History        []Snapshot    `json:"history"`
	Trades         []TradeRecord `json:"trades"`
}

// BotState tracks the simulated bot lifecycle.
type BotState struct {
	Active            bool      `json:"active"`
	MonthlyReturnRate float64   `json:"monthly_return_rate"`
	LastUpdate        time.Time `json:"last_update"`
	UpdatedAt         time.Time `json:"updated_at"`
}
