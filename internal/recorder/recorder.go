package recorder

import (
	"time"

	"PaperFund/internal/model"
)

// BalancePoint archives one applied growth tick.
type BalancePoint struct {
	Time    time.Time
	Balance float64
	Growth  float64
	Profit  float64
}

// Recorder persists historical data beyond the in-memory bounds, for
// external charting and analysis.
type Recorder interface {
	RecordSnapshot(pt *BalancePoint) error
	RecordTrade(rec *model.TradeRecord) error
	Close() error
}
