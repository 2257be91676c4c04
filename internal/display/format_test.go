package display

import (
	"strings"
	"testing"
	"time"

	"PaperFund/internal/model"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		amount float64
		cur    model.Currency
		rate   float64
		want   string
	}{
		{1.013, model.CurrencyBTC, 64000, "₿ 1.01300000"},
		{0, model.CurrencyBTC, 64000, "₿ 0.00000000"},
		{1.0, model.CurrencyUSD, 64000, "$64,000.00"},
		{0.5, model.CurrencyUSD, 50000, "$25,000.00"},
	}
	for _, tt := range tests {
		if got := FormatBalance(tt.amount, tt.cur, tt.rate); got != tt.want {
			t.Errorf("FormatBalance(%v, %v, %v) = %q, want %q", tt.amount, tt.cur, tt.rate, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(1.3); got != "+1.30%" {
		t.Errorf("expected +1.30%%, got %q", got)
	}
	if got := FormatPercent(-0.5); got != "-0.50%" {
		t.Errorf("expected -0.50%%, got %q", got)
	}
}

func TestFormatStatus_ZeroDeposit(t *testing.T) {
	out := FormatStatus(&model.Portfolio{}, &model.BotState{MonthlyReturnRate: 0.013}, model.CurrencyBTC, 64000)
	if !strings.Contains(out, "ROI:             +0.00%") {
		t.Errorf("ROI with zero deposit must render as +0.00%%:\n%s", out)
	}
	if !strings.Contains(out, "Monthly return:  +1.30%") {
		t.Errorf("monthly return missing:\n%s", out)
	}
}

func TestFormatTradeLog_Empty(t *testing.T) {
	out := FormatTradeLog(nil, model.CurrencyBTC, 64000)
	if !strings.Contains(out, "No trades yet") {
		t.Errorf("unexpected empty log output: %q", out)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 10); got != "" {
		t.Errorf("empty input must render empty, got %q", got)
	}

	line := Sparkline([]float64{1, 2, 3, 4}, 10)
	if len([]rune(line)) != 4 {
		t.Errorf("short series keeps its length, got %d runes", len([]rune(line)))
	}

	values := make([]float64, 200)
	for i := range values {
		values[i] = float64(i)
	}
	line = Sparkline(values, 48)
	if len([]rune(line)) != 48 {
		t.Errorf("long series must resample to width, got %d runes", len([]rune(line)))
	}
	runes := []rune(line)
	if runes[0] != '▁' || runes[47] != '█' {
		t.Errorf("rising series should span the rune range: %q", line)
	}
}

func TestFormatFeed(t *testing.T) {
	if !strings.Contains(FormatFeed(nil), "empty") {
		t.Error("empty feed message missing")
	}
	events := []model.FeedEvent{{
		Time: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Mode: model.FeedModeBlock,
		Text: "block 850000 mined, 2000 transactions",
	}}
	out := FormatFeed(events)
	if !strings.Contains(out, "[block]") || !strings.Contains(out, "850000") {
		t.Errorf("feed event not rendered: %q", out)
	}
}
