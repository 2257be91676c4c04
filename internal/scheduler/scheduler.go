package scheduler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"PaperFund/internal/display"
	"PaperFund/internal/engine"
	"PaperFund/internal/feed"
	"PaperFund/internal/model"
	"PaperFund/internal/recorder"
	"PaperFund/internal/seed"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler drives the growth and feed ticks and handles user commands.
type Scheduler struct {
	Cron     *cron.Cron
	Engine   *engine.Engine
	Feed     *feed.Simulator
	Recorder recorder.Recorder
	Seed     *seed.Source

	usdRate float64
	log     *logrus.Entry
}

// New creates a Scheduler around the given components.
func New(eng *engine.Engine, sim *feed.Simulator, rec recorder.Recorder, src *seed.Source, usdRate float64, log *logrus.Entry) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Engine:   eng,
		Feed:     sim,
		Recorder: rec,
		Seed:     src,
		usdRate:  usdRate,
		log:      log,
	}
}

// RegisterAll registers the growth and feed tick tasks.
func (s *Scheduler) RegisterAll(growthCron, feedCron string) error {
	if _, err := s.Cron.AddFunc(growthCron, s.growthTask); err != nil {
		return fmt.Errorf("register growth tick: %w", err)
	}
	if _, err := s.Cron.AddFunc(feedCron, s.feedTask); err != nil {
		return fmt.Errorf("register feed tick: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) growthTask() {
	res := s.Engine.Advance(time.Now())
	if !res.Applied {
		return
	}

	s.log.WithFields(logrus.Fields{
		"growth":  fmt.Sprintf("%.8f", res.Growth),
		"balance": fmt.Sprintf("%.8f", res.Balance),
	}).Debug("growth applied")

	if err := s.Recorder.RecordSnapshot(&recorder.BalancePoint{
		Time:    time.Now(),
		Balance: res.Balance,
		Growth:  res.Growth,
		Profit:  s.Engine.Profit(),
	}); err != nil {
		s.log.WithError(err).Warn("record snapshot")
	}
	if res.Trade != nil {
		if err := s.Recorder.RecordTrade(res.Trade); err != nil {
			s.log.WithError(err).Warn("record trade")
		}
	}
}

func (s *Scheduler) feedTask() {
	ev := s.Feed.Emit(time.Now())
	s.log.WithField("mode", ev.Mode).Debug(ev.Text)
}

// HandleCommand processes a console command and returns the reply text.
func (s *Scheduler) HandleCommand(line string) string {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "deposit":
		if len(fields) < 2 {
			return "usage: deposit <amount>"
		}
		amount, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return "Invalid deposit: amount must be a number."
		}
		rec, err := s.Engine.Deposit(amount, time.Now())
		if err != nil {
			return "Invalid deposit: amount must be a positive number."
		}
		if err := s.Recorder.RecordTrade(&rec); err != nil {
			s.log.WithError(err).Warn("record deposit")
		}
		return fmt.Sprintf("Deposited %s. Bot is active.",
			display.FormatBalance(rec.Amount, s.Engine.Currency(), s.usdRate))

	case "currency":
		if len(fields) < 2 {
			return "usage: currency btc|usd"
		}
		switch strings.ToLower(fields[1]) {
		case "btc":
			s.Engine.SetCurrency(model.CurrencyBTC)
		case "usd":
			s.Engine.SetCurrency(model.CurrencyUSD)
		default:
			return "usage: currency btc|usd"
		}
		return fmt.Sprintf("Display currency set to %s.", strings.ToUpper(fields[1]))

	case "feed":
		if len(fields) < 2 {
			return display.FormatFeed(s.Feed.Events())
		}
		ev, err := s.Feed.SetMode(model.FeedMode(strings.ToLower(fields[1])), time.Now())
		if err != nil {
			return "usage: feed [mempool|block]"
		}
		return fmt.Sprintf("Feed mode set to %s.\n  %s", ev.Mode, ev.Text)

	case "status":
		p, b := s.Engine.Snapshot()
		out := display.FormatStatus(&p, &b, s.Engine.Currency(), s.usdRate)
		if rate, ok := s.Engine.WinRatePercent(); ok {
			out += fmt.Sprintf("  Win rate:        %.1f%%\n", rate)
		}
		return out

	case "trades":
		p, _ := s.Engine.Snapshot()
		return display.FormatTradeLog(p.Trades, s.Engine.Currency(), s.usdRate)

	case "chart":
		p, _ := s.Engine.Snapshot()
		values := make([]float64, len(p.History))
		for i, h := range p.History {
			values[i] = h.Value
		}
		if len(values) == 0 {
			// no portfolio history yet, chart the seed document instead
			cs := s.Seed.ChartSeed()
			for _, pt := range cs.Points {
				values = append(values, pt.Value)
			}
			return "Demo chart (no deposits yet):\n  " + display.Sparkline(values, 48)
		}
		return "Balance history:\n  " + display.Sparkline(values, 48)

	case "reset":
		if err := s.Engine.Reset(); err != nil {
			s.log.WithError(err).Warn("clear persisted state")
		}
		return "Portfolio reset to defaults."

	case "help":
		return usage
	default:
		return "Unknown command.\n" + usage
	}
}

const usage = `Commands:
  deposit <amount>      credit a deposit and activate the bot
  currency btc|usd      switch display currency
  feed [mempool|block]  show the feed, or switch its mode
  status                portfolio status report
  trades                simulated trade log
  chart                 balance history sparkline
  reset                 clear all persisted state
  help                  this text`
