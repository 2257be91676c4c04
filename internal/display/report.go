package display

import (
	"fmt"
	"strings"

	"PaperFund/internal/model"
)

// FormatStatus renders the portfolio dashboard report.
func FormatStatus(p *model.Portfolio, b *model.BotState, cur model.Currency, usdRate float64) string {
	var sb strings.Builder

	sb.WriteString("Portfolio status\n")
	sb.WriteString(fmt.Sprintf("  Balance:         %s\n", FormatBalance(p.Balance, cur, usdRate)))
	sb.WriteString(fmt.Sprintf("  Initial deposit: %s\n", FormatBalance(p.InitialDeposit, cur, usdRate)))

	profit := p.Balance - p.InitialDeposit
	sb.WriteString(fmt.Sprintf("  Profit:          %s\n", FormatBalance(profit, cur, usdRate)))
	if p.InitialDeposit > 0 {
		sb.WriteString(fmt.Sprintf("  ROI:             %s\n", FormatPercent(profit/p.InitialDeposit*100)))
	} else {
		sb.WriteString("  ROI:             +0.00%\n")
	}

	sb.WriteString(fmt.Sprintf("  Bot active:      %v\n", b.Active))
	sb.WriteString(fmt.Sprintf("  Monthly return:  %s\n", FormatPercent(b.MonthlyReturnRate*100)))
	if !b.LastUpdate.IsZero() {
		sb.WriteString(fmt.Sprintf("  Last update:     %s\n", b.LastUpdate.Format("2006-01-02 15:04:05")))
	}
	sb.WriteString(fmt.Sprintf("  History points:  %d\n", len(p.History)))
	return sb.String()
}

// FormatTradeLog renders the simulated trade log in stored order.
func FormatTradeLog(trades []model.TradeRecord, cur model.Currency, usdRate float64) string {
	if len(trades) == 0 {
		return "No trades yet. Make a deposit to activate the bot.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Trade log (%d entries)\n", len(trades)))
	for _, t := range trades {
		label := "deposit"
		if t.Kind == model.TradeKindTrade {
			if t.Profitable != nil && *t.Profitable {
				label = "trade  ✓"
			} else {
				label = "trade  ✗"
			}
		}
		sb.WriteString(fmt.Sprintf("  %s  %-9s %s\n",
			t.Time.Format("01-02 15:04:05"), label, FormatBalance(t.Amount, cur, usdRate)))
	}
	return sb.String()
}

// FormatFeed renders the visible feed list, newest-last.
func FormatFeed(events []model.FeedEvent) string {
	if len(events) == 0 {
		return "Feed is empty.\n"
	}

	var sb strings.Builder
	for _, ev := range events {
		sb.WriteString(fmt.Sprintf("  %s  [%s] %s\n", ev.Time.Format("15:04:05"), ev.Mode, ev.Text))
	}
	return sb.String()
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a fixed-width unicode sparkline. Longer
// series are resampled down to width points.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	if len(values) > width {
		resampled := make([]float64, width)
		for i := range resampled {
			resampled[i] = values[i*len(values)/width]
		}
		values = resampled
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var sb strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkRunes)-1))
		}
		sb.WriteRune(sparkRunes[idx])
	}
	return sb.String()
}
