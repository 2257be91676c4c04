package feed

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"PaperFund/internal/model"
)

// DefaultCap bounds the visible event list.
const DefaultCap = 10

// Simulator generates the decorative network-activity feed. Events are
// synthetic text with randomized numeric fields; nothing here touches
// portfolio state.
type Simulator struct {
	mu     sync.Mutex
	mode   model.FeedMode
	events []model.FeedEvent
	rng    *rand.Rand
	limit  int
}

// New returns a Simulator in the given mode. limit <= 0 uses DefaultCap.
func New(mode model.FeedMode, limit int, rng *rand.Rand) *Simulator {
	if limit <= 0 {
		limit = DefaultCap
	}
	if mode != model.FeedModeMempool && mode != model.FeedModeBlock {
		mode = model.FeedModeMempool
	}
	return &Simulator{mode: mode, rng: rng, limit: limit}
}

// Mode returns the current feed mode.
func (s *Simulator) Mode() model.FeedMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Emit renders one random event for the current mode and appends it to
// the visible list, dropping the oldest beyond the cap. Order is always
// newest-last.
func (s *Simulator) Emit(now time.Time) model.FeedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emitLocked(now)
}

// SetMode switches the feed mode, clears the visible list, and
// immediately emits one event in the new mode.
func (s *Simulator) SetMode(mode model.FeedMode, now time.Time) (model.FeedEvent, error) {
	if mode != model.FeedModeMempool && mode != model.FeedModeBlock {
		return model.FeedEvent{}, fmt.Errorf("unknown feed mode %q", mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	s.events = nil
	return s.emitLocked(now), nil
}

// Events returns a copy of the visible list, newest-last.
func (s *Simulator) Events() []model.FeedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.FeedEvent(nil), s.events...)
}

func (s *Simulator) emitLocked(now time.Time) model.FeedEvent {
	ev := model.FeedEvent{Time: now, Mode: s.mode, Text: s.render()}
	s.events = append(s.events, ev)
	if n := len(s.events); n > s.limit {
		s.events = s.events[n-s.limit:]
	}
	return ev
}

func (s *Simulator) render() string {
	if s.mode == model.FeedModeBlock {
		height := 840000 + s.rng.Intn(60000)
		switch s.rng.Intn(4) {
		case 0:
			return fmt.Sprintf("block %d mined, %d transactions", height, 1500+s.rng.Intn(2500))
		case 1:
			return fmt.Sprintf("block %d relayed in %dms", height, 120+s.rng.Intn(800))
		case 2:
			return fmt.Sprintf("block %d reward claimed: 3.%03d BTC", height, s.rng.Intn(1000))
		default:
			return fmt.Sprintf("chain tip advanced to %d, difficulty %+.2f%%", height, (s.rng.Float64()-0.5)*4)
		}
	}

	switch s.rng.Intn(4) {
	case 0:
		return fmt.Sprintf("tx %s entered mempool (%d sat/vB)", s.txid(), 1+s.rng.Intn(180))
	case 1:
		return fmt.Sprintf("mempool depth %d tx, median fee %d sat/vB", 4000+s.rng.Intn(90000), 2+s.rng.Intn(60))
	case 2:
		return fmt.Sprintf("tx %s replaced by fee bump (+%d sat/vB)", s.txid(), 1+s.rng.Intn(40))
	default:
		return fmt.Sprintf("tx %s propagated to %d peers", s.txid(), 8+s.rng.Intn(120))
	}
}

// txid fabricates a short hex transaction ID.
func (s *Simulator) txid() string {
	const hex = "0123456789abcdef"
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = hex[s.rng.Intn(len(hex))]
	}
	return string(buf) + "…"
}
