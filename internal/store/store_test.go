package store

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"PaperFund/internal/model"

	"github.com/sirupsen/logrus"
)

func testEntry() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func testPortfolio() *model.Portfolio {
	win := true
	return &model.Portfolio{
		Balance:        1.013,
		InitialDeposit: 1.0,
		History: []model.Snapshot{
			{Time: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Value: 1.0},
			{Time: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Value: 1.013},
		},
		Trades: []model.TradeRecord{
			{ID: "d1", Time: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Kind: model.TradeKindDeposit, Amount: 1.0},
			{ID: "t1", Time: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Kind: model.TradeKindTrade, Amount: 0.04, Profitable: &win},
		},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, err := New(t.TempDir(), testEntry())
	if err != nil {
		t.Fatal(err)
	}

	p := testPortfolio()
	b := &model.BotState{
		Active:            true,
		MonthlyReturnRate: 0.013,
		LastUpdate:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := s.Save(p, b, model.CurrencyUSD); err != nil {
		t.Fatalf("save: %v", err)
	}

	p2, b2, cur := s.Load()
	if p2.Balance != p.Balance || p2.InitialDeposit != p.InitialDeposit {
		t.Errorf("portfolio mismatch: %+v", p2)
	}
	if len(p2.History) != 2 || len(p2.Trades) != 2 {
		t.Errorf("log lengths mismatch: %d history, %d trades", len(p2.History), len(p2.Trades))
	}
	if p2.Trades[1].Profitable == nil || !*p2.Trades[1].Profitable {
		t.Error("profitable flag lost in round trip")
	}
	if p2.Trades[0].Profitable != nil {
		t.Error("deposit record gained a profitable flag")
	}
	if !b2.Active || b2.MonthlyReturnRate != 0.013 || !b2.LastUpdate.Equal(b.LastUpdate) {
		t.Errorf("bot state mismatch: %+v", b2)
	}
	if cur != model.CurrencyUSD {
		t.Errorf("currency mismatch: %v", cur)
	}
}

func TestLoad_MissingKeysDefault(t *testing.T) {
	s, err := New(t.TempDir(), testEntry())
	if err != nil {
		t.Fatal(err)
	}

	p, b, cur := s.Load()
	if p.Balance != 0 || p.InitialDeposit != 0 || p.History != nil || p.Trades != nil {
		t.Errorf("expected zero portfolio, got %+v", p)
	}
	if b.Active || !b.LastUpdate.IsZero() {
		t.Errorf("expected zero bot state, got %+v", b)
	}
	if cur != model.CurrencyBTC {
		t.Errorf("expected BTC default, got %v", cur)
	}
}

func TestLoad_CorruptKeyFallsBackAlone(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, testEntry())
	if err != nil {
		t.Fatal(err)
	}

	b := &model.BotState{Active: true, MonthlyReturnRate: 0.013, LastUpdate: time.Now()}
	if err := s.Save(testPortfolio(), b, model.CurrencyUSD); err != nil {
		t.Fatal(err)
	}

	// corrupt only the bot state record
	if err := os.WriteFile(filepath.Join(dir, keyBotState), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	p2, b2, cur := s.Load()
	if p2.Balance != 1.013 {
		t.Errorf("intact portfolio key should still load, got %+v", p2)
	}
	if b2.Active || b2.MonthlyReturnRate != 0 {
		t.Errorf("corrupt bot state should fall back to default, got %+v", b2)
	}
	if cur != model.CurrencyUSD {
		t.Errorf("intact currency key should still load, got %v", cur)
	}
}

func TestLoad_InvalidCurrencyDefaults(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, testEntry())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, keyCurrency), []byte(`"EUR"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, cur := s.Load(); cur != model.CurrencyBTC {
		t.Errorf("unknown currency should default to BTC, got %v", cur)
	}
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, testEntry())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(testPortfolio(), &model.BotState{Active: true}, model.CurrencyUSD); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	p, b, cur := s.Load()
	if p.Balance != 0 || b.Active || cur != model.CurrencyBTC {
		t.Errorf("state survived clear: %+v %+v %v", p, b, cur)
	}

	// clearing an already-empty store is not an error
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
