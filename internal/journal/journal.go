// Package journal keeps the session's operator-visible activity (state
// changes, warnings, alert notices) in an SQLite database so the terminal UI
// can show it while it owns the screen. The default DSN is in-memory, so
// nothing outlives the process.
package journal

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/akyairhashvil/alarm/internal/models"
	"github.com/akyairhashvil/alarm/internal/util"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS activity (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	level TEXT NOT NULL,
	message TEXT NOT NULL,
	created_at DATETIME NOT NULL
);`

// Journal records activity lines. It is an io.Writer so the standard logger
// can be pointed at it.
type Journal struct {
	db *sql.DB
	// pending buffers a partial line between Write calls.
	mu      sync.Mutex
	pending []byte
}

// Open connects to dsn and ensures the schema exists.
func Open(ctx context.Context, dsn string) (*Journal, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, wrapErr("open", err)
	}
	// An in-memory database exists per connection; keep exactly one.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, wrapErr("open", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, wrapErr("migrate", err)
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Record stores one activity line.
func (j *Journal) Record(ctx context.Context, level models.Level, message string) error {
	_, err := j.db.ExecContext(ctx,
		"INSERT INTO activity (level, message, created_at) VALUES (?, ?, ?)",
		string(level), message, time.Now().UTC())
	return wrapErr("record", err)
}

// Recent returns up to limit lines, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]models.Activity, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, level, message, created_at
		FROM activity
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapErr("list", err)
	}
	defer rows.Close()

	var out []models.Activity
	for rows.Next() {
		var a models.Activity
		var level string
		if err := rows.Scan(&a.ID, &level, &a.Message, &a.CreatedAt); err != nil {
			return nil, wrapErr("list", err)
		}
		a.Level = models.Level(level)
		out = append(out, a)
	}
	return out, wrapErr("list", rows.Err())
}

// Count returns how many lines were recorded at level.
func (j *Journal) Count(ctx context.Context, level models.Level) (int, error) {
	var n int
	err := j.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM activity WHERE level = ?", string(level)).Scan(&n)
	return n, wrapErr("count", err)
}

// Write records each complete line in p, classified by its leading level
// token. A trailing partial line waits for the next Write.
func (j *Journal) Write(p []byte) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.pending = append(j.pending, p...)
	for {
		i := bytes.IndexByte(j.pending, '\n')
		if i < 0 {
			break
		}
		line := string(j.pending[:i])
		j.pending = j.pending[i+1:]
		level, msg := util.SplitLevel(line)
		if msg == "" {
			continue
		}
		if err := j.Record(context.Background(), level, msg); err != nil {
			return 0, fmt.Errorf("journal write: %w", err)
		}
	}
	return len(p), nil
}
