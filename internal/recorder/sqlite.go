package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	"PaperFund/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder archives history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external chart tooling can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS balance_history (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			balance   REAL,
			growth    REAL,
			profit    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_balance_ts ON balance_history(timestamp)`,

		`CREATE TABLE IF NOT EXISTS trade_log (
			id         TEXT PRIMARY KEY,
			timestamp  INTEGER NOT NULL,
			kind       TEXT,
			amount     REAL,
			profitable INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trade_ts ON trade_log(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSnapshot(pt *BalancePoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO balance_history (timestamp, balance, growth, profit)
		VALUES (?,?,?,?)`,
		pt.Time.Unix(), pt.Balance, pt.Growth, pt.Profit,
	)
	return err
}

func (r *SQLiteRecorder) RecordTrade(rec *model.TradeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var profitable any
	if rec.Profitable != nil {
		profitable = *rec.Profitable
	}
	_, err := r.db.Exec(`INSERT OR IGNORE INTO trade_log (id, timestamp, kind, amount, profitable)
		VALUES (?,?,?,?,?)`,
		rec.ID, rec.Time.Unix(), string(rec.Kind), rec.Amount, profitable,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
