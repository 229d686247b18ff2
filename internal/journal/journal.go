// Package journal keeps a local audit trail of moderation decisions.
//
// The journal is advisory: it records what the operator did and when, for
// later review with `mrs history`. A journal failure is logged and otherwise
// ignored — it must never block a moderation action.
//
// # Thread Safety
//
// Journal is safe for concurrent use. The underlying sql.DB handles
// connection pooling and serialization.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// Action is a recorded moderation decision kind.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionRestore Action = "restore"
)

// Entry is one recorded decision.
type Entry struct {
	ID     int64
	ItemID string
	Title  string
	Action Action
	At     time.Time
}

// Journal persists decisions to a local SQLite database.
type Journal struct {
	db *sql.DB
}

// Open creates or opens the journal database at path and applies migrations.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	// WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}

	return j, nil
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS decisions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_id TEXT NOT NULL,
		title TEXT,
		action TEXT NOT NULL,
		at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_decisions_at ON decisions(at DESC);
	CREATE INDEX IF NOT EXISTS idx_decisions_item ON decisions(item_id);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Record appends one decision.
func (j *Journal) Record(ctx context.Context, itemID, title string, action Action) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO decisions (item_id, title, action, at) VALUES (?, ?, ?, ?)`,
		itemID, title, string(action), time.Now().UTC())
	return err
}

// Recent returns up to limit decisions, most recent first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, item_id, title, action, at FROM decisions ORDER BY at DESC, id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var action string
		if err := rows.Scan(&e.ID, &e.ItemID, &e.Title, &action, &e.At); err != nil {
			return nil, err
		}
		e.Action = Action(action)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountByAction returns decision totals grouped by action.
func (j *Journal) CountByAction(ctx context.Context) (map[Action]int, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT action, COUNT(*) FROM decisions GROUP BY action`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[Action]int)
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return nil, err
		}
		counts[Action(action)] = n
	}
	return counts, rows.Err()
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}
