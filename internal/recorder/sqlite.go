package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"SpotBoard/internal/model"
)

// SQLiteRecorder persists price history and board events to SQLite.
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

	// WAL mode so history queries don't block the per-minute writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_snapshots (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			gold_bid      TEXT,
			gold_ask      TEXT,
			silver_bid    TEXT,
			silver_ask    TEXT,
			captured_date TEXT,
			captured_time TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON price_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS board_events (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			kind      TEXT,
			message   TEXT,
			status    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_ts ON board_events(timestamp)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// RecordSnapshot stores one successful capture of both metals.
func (r *SQLiteRecorder) RecordSnapshot(snap *model.PriceSnapshot) error {
	if snap == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO price_snapshots
			(timestamp, gold_bid, gold_ask, silver_bid, silver_ask, captured_date, captured_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(),
		snap.Gold.Bid, snap.Gold.Ask,
		snap.Silver.Bid, snap.Silver.Ask,
		snap.Gold.Date, snap.Gold.Time,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// RecordBoardEvent stores one board interaction.
func (r *SQLiteRecorder) RecordBoardEvent(evt *BoardEvent) error {
	if evt == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO board_events (timestamp, kind, message, status) VALUES (?, ?, ?, ?)`,
		time.Now().Unix(), evt.Kind, evt.Message, evt.Status,
	)
	if err != nil {
		return fmt.Errorf("insert board event: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
