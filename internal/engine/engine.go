package engine

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"PaperFund/internal/growth"
	"PaperFund/internal/model"
	"PaperFund/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrInvalidDeposit rejects non-positive or non-finite deposit amounts.
var ErrInvalidDeposit = errors.New("deposit amount must be a positive number")

// Config holds the engine tunables. Zero values are replaced by defaults
// in New.
type Config struct {
	MonthlyReturnRate float64 // fixed simulated return, default 0.013
	HistoryCap        int     // balance history bound, default 100
	TradeCap          int     // trade log bound, default 100
	NewestFirst       bool    // prepend trades instead of appending
	TradeChance       float64 // probability of a synthetic trade per applied tick
	WinBias           float64 // probability a synthetic trade is labeled profitable
}

func (c *Config) applyDefaults() {
	if c.MonthlyReturnRate == 0 {
		c.MonthlyReturnRate = 0.013
	}
	if c.HistoryCap == 0 {
		c.HistoryCap = 100
	}
	if c.TradeCap == 0 {
		c.TradeCap = 100
	}
	if c.TradeChance == 0 {
		c.TradeChance = 0.3
	}
	if c.WinBias == 0 {
		c.WinBias = 0.6
	}
}

// TickResult reports what a single Advance did.
type TickResult struct {
	Applied bool
	Growth  float64
	Balance float64
	Trade   *model.TradeRecord
}

// Engine owns the simulated portfolio and applies compounding growth to
// it. All mutations persist through the store; a failed write is logged
// and the in-memory state still advances.
type Engine struct {
	mu        sync.Mutex
	cfg       Config
	store     *store.Store
	rng       *rand.Rand
	log       *logrus.Entry
	portfolio *model.Portfolio
	state     *model.BotState
	currency  model.Currency
}

// New loads persisted state from the store and returns an Engine. The
// random source must be seeded by the caller so simulations can be
// reproduced.
func New(cfg Config, st *store.Store, rng *rand.Rand, log *logrus.Entry) *Engine {
	cfg.applyDefaults()

	p, b, cur := st.Load()
	b.MonthlyReturnRate = cfg.MonthlyReturnRate

	return &Engine{
		cfg:       cfg,
		store:     st,
		rng:       rng,
		log:       log,
		portfolio: p,
		state:     b,
		currency:  cur,
	}
}

// Deposit credits a user deposit. The first deposit fixes the initial
// deposit, resets the history to a single snapshot, and activates the
// bot; later deposits only accumulate the balance.
func (e *Engine) Deposit(amount float64, now time.Time) (model.TradeRecord, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return model.TradeRecord{}, ErrInvalidDeposit
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.portfolio.InitialDeposit == 0 {
		e.portfolio.InitialDeposit = amount
		e.portfolio.Balance = amount
		e.portfolio.History = []model.Snapshot{{Time: now, Value: amount}}
	} else {
		e.portfolio.Balance += amount
	}
	e.state.Active = true
	e.state.LastUpdate = now

	rec := model.TradeRecord{
		ID:     uuid.NewString(),
		Time:   now,
		Kind:   model.TradeKindDeposit,
		Amount: amount,
	}
	e.appendTrade(rec)
	e.persist()
	return rec, nil
}

// Advance applies compounding growth for the wall time elapsed since the
// last applied update. It is the single scheduler entry point: callers
// own the clock, so the math is testable without real timers.
func (e *Engine) Advance(now time.Time) TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Active || e.portfolio.Balance <= 0 {
		return TickResult{Balance: e.portfolio.Balance}
	}

	months := growth.ElapsedMonths(e.state.LastUpdate, now)
	g := growth.Compound(e.portfolio.Balance, e.state.MonthlyReturnRate, months)
	if g < growth.MinApplied {
		// LastUpdate stays put so sub-threshold time keeps accruing
		// until a later tick crosses the threshold.
		return TickResult{Balance: e.portfolio.Balance}
	}

	e.portfolio.Balance += g
	e.appendSnapshot(model.Snapshot{Time: now, Value: e.portfolio.Balance})
	e.state.LastUpdate = now

	res := TickResult{Applied: true, Growth: g, Balance: e.portfolio.Balance}
	if e.rng.Float64() < e.cfg.TradeChance {
		profitable := e.rng.Float64() < e.cfg.WinBias
		rec := model.TradeRecord{
			ID:         uuid.NewString(),
			Time:       now,
			Kind:       model.TradeKindTrade,
			Amount:     e.portfolio.Balance * (0.01 + e.rng.Float64()*0.05),
			Profitable: &profitable,
		}
		e.appendTrade(rec)
		res.Trade = &rec
	}

	e.persist()
	return res
}

// Reset clears persisted state and returns the engine to its defaults.
func (e *Engine) Reset() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.portfolio = &model.Portfolio{}
	e.state = &model.BotState{MonthlyReturnRate: e.cfg.MonthlyReturnRate}
	e.currency = model.CurrencyBTC
	return e.store.Clear()
}

// Snapshot returns copies of the portfolio and bot state.
func (e *Engine) Snapshot() (model.Portfolio, model.BotState) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := *e.portfolio
	p.History = append([]model.Snapshot(nil), e.portfolio.History...)
	p.Trades = append([]model.TradeRecord(nil), e.portfolio.Trades...)
	return p, *e.state
}

// Currency returns the persisted display currency preference.
func (e *Engine) Currency() model.Currency {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currency
}

// SetCurrency switches the display currency and persists the choice.
func (e *Engine) SetCurrency(cur model.Currency) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.currency = cur
	e.persist()
}

// Profit is the simulated gain over the initial deposit.
func (e *Engine) Profit() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.portfolio.Balance - e.portfolio.InitialDeposit
}

// ROIPercent is profit over initial deposit; 0 before any deposit.
func (e *Engine) ROIPercent() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.portfolio.InitialDeposit == 0 {
		return 0
	}
	return (e.portfolio.Balance - e.portfolio.InitialDeposit) / e.portfolio.InitialDeposit * 100
}

// WinRatePercent is the share of trades labeled profitable. The second
// return is false when the trade log is empty.
func (e *Engine) WinRatePercent() (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	total, wins := 0, 0
	for _, t := range e.portfolio.Trades {
		if t.Kind != model.TradeKindTrade {
			continue
		}
		total++
		if t.Profitable != nil && *t.Profitable {
			wins++
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(wins) / float64(total) * 100, true
}

func (e *Engine) appendSnapshot(s model.Snapshot) {
	e.portfolio.History = append(e.portfolio.History, s)
	if n := len(e.portfolio.History); n > e.cfg.HistoryCap {
		e.portfolio.History = e.portfolio.History[n-e.cfg.HistoryCap:]
	}
}

func (e *Engine) appendTrade(rec model.TradeRecord) {
	if e.cfg.NewestFirst {
		e.portfolio.Trades = append([]model.TradeRecord{rec}, e.portfolio.Trades...)
		if len(e.portfolio.Trades) > e.cfg.TradeCap {
			e.portfolio.Trades = e.portfolio.Trades[:e.cfg.TradeCap]
		}
		return
	}
	e.portfolio.Trades = append(e.portfolio.Trades, rec)
	if n := len(e.portfolio.Trades); n > e.cfg.TradeCap {
		e.portfolio.Trades = e.portfolio.Trades[n-e.cfg.TradeCap:]
	}
}

func (e *Engine) persist() {
	if err := e.store.Save(e.portfolio, e.state, e.currency); err != nil {
		e.log.WithError(err).Warn("failed to persist portfolio state, continuing in memory")
	}
}
