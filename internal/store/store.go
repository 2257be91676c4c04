package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"PaperFund/internal/model"

	"github.com/sirupsen/logrus"
)

// Per-key record files under the data directory. Each key is saved and
// loaded independently so corruption of one never takes down the others.
const (
	keyPortfolio = "portfolio.json"
	keyBotState  = "bot_state.json"
	keyCurrency  = "currency.json"
)

// Store persists the portfolio, bot state, and currency preference as
// three independently keyed JSON records under a data directory.
type Store struct {
	dir string
	log *logrus.Entry
}

// New creates the data directory if needed and returns a Store.
func New(dir string, log *logrus.Entry) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Save writes all three records. Every key is attempted even when an
// earlier one fails; the first error is returned.
func (s *Store) Save(p *model.Portfolio, b *model.BotState, cur model.Currency) error {
	b.UpdatedAt = time.Now()

	var firstErr error
	if err := s.writeKey(keyPortfolio, p); err != nil {
		firstErr = err
	}
	if err := s.writeKey(keyBotState, b); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := s.writeKey(keyCurrency, cur); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// Load reads the three records back. A missing or corrupt key falls
// back to that key's zero default; corruption is logged, never returned.
func (s *Store) Load() (*model.Portfolio, *model.BotState, model.Currency) {
	p := &model.Portfolio{}
	var loadedP model.Portfolio
	if s.readKey(keyPortfolio, &loadedP) {
		p = &loadedP
	}

	b := &model.BotState{}
	var loadedB model.BotState
	if s.readKey(keyBotState, &loadedB) {
		b = &loadedB
	}

	cur := model.CurrencyBTC
	var loadedCur model.Currency
	if s.readKey(keyCurrency, &loadedCur) {
		if loadedCur == model.CurrencyBTC || loadedCur == model.CurrencyUSD {
			cur = loadedCur
		}
	}

	return p, b, cur
}

// Clear removes all three keys. Missing keys are not an error.
func (s *Store) Clear() error {
	var firstErr error
	for _, key := range []string{keyPortfolio, keyBotState, keyCurrency} {
		if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return firstErr
}

func (s *Store) writeKey(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// readKey unmarshals a key into v. Returns false when the key is
// missing or unreadable; callers must then discard v.
func (s *Store) readKey(key string, v any) bool {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("key", key).Warn("read state key, using default")
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("corrupt state key, using default")
		return false
	}
	return true
}
