package recorder

import "PaperFund/internal/model"

// NoopRecorder is used when no SQLite path is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshot(_ *BalancePoint) error   { return nil }
func (n *NoopRecorder) RecordTrade(_ *model.TradeRecord) error { return nil }
func (n *NoopRecorder) Close() error                           { return nil }
