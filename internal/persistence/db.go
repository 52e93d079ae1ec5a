// Package persistence provides SQLite-based save slots for player state.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/utopian-sands/internal/player"
)

// SchemaVersion tags every save row. Rows written under another version are
// refused on load.
const SchemaVersion = 1

var (
	// ErrNoSave is returned by Load when the slot holds nothing.
	ErrNoSave = errors.New("no saved game")
	// ErrIncompatibleSave is returned by Load when the row cannot be resumed.
	ErrIncompatibleSave = errors.New("incompatible saved game")
)

// Snapshot is one saved session: the full player state and the index of
// the next event to run.
type Snapshot struct {
	Slot      string
	SessionID uuid.UUID
	Player    *player.State
	Cursor    int
	SavedAt   time.Time
}

// DB wraps a SQLite connection for save slots.
type DB struct {
	conn *sqlx.DB
}

type saveRow struct {
	Slot          string `db:"slot"`
	SchemaVersion int    `db:"schema_version"`
	SessionID     string `db:"session_id"`
	PlayerJSON    string `db:"player_json"`
	Cursor        int    `db:"cursor"`
	SavedAt       int64  `db:"saved_at"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		schema_version INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		player_json TEXT NOT NULL,
		cursor INTEGER NOT NULL,
		saved_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return err
	}
	return db.SaveMeta("schema_version", strconv.Itoa(SchemaVersion))
}

// Save writes snap to its slot, replacing whatever was there.
func (db *DB) Save(ctx context.Context, snap Snapshot) error {
	if snap.Player == nil {
		return fmt.Errorf("save slot %q: nil player", snap.Slot)
	}
	playerJSON, err := json.Marshal(snap.Player)
	if err != nil {
		return fmt.Errorf("encode player: %w", err)
	}
	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT OR REPLACE INTO saves
		(slot, schema_version, session_id, player_json, cursor, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		snap.Slot, SchemaVersion, snap.SessionID.String(), string(playerJSON),
		snap.Cursor, savedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert save %q: %w", snap.Slot, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		"last_slot", snap.Slot,
	); err != nil {
		return fmt.Errorf("record last slot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	slog.Debug("save written", "slot", snap.Slot, "cursor", snap.Cursor, "session", snap.SessionID)
	return nil
}

// Load reads the snapshot in slot. It returns ErrNoSave when the slot is
// empty and ErrIncompatibleSave when the row cannot be resumed.
func (db *DB) Load(ctx context.Context, slot string) (Snapshot, error) {
	var row saveRow
	err := db.conn.GetContext(ctx, &row, "SELECT * FROM saves WHERE slot = ?", slot)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrNoSave
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("select save %q: %w", slot, err)
	}
	return row.snapshot()
}

func (r saveRow) snapshot() (Snapshot, error) {
	if r.SchemaVersion != SchemaVersion {
		return Snapshot{}, fmt.Errorf("%w: schema version %d, want %d", ErrIncompatibleSave, r.SchemaVersion, SchemaVersion)
	}
	if r.Cursor < 0 {
		return Snapshot{}, fmt.Errorf("%w: negative cursor %d", ErrIncompatibleSave, r.Cursor)
	}
	if r.PlayerJSON == "" || r.PlayerJSON == "null" {
		return Snapshot{}, fmt.Errorf("%w: missing player", ErrIncompatibleSave)
	}

	var p player.State
	if err := json.Unmarshal([]byte(r.PlayerJSON), &p); err != nil {
		return Snapshot{}, fmt.Errorf("%w: decode player: %v", ErrIncompatibleSave, err)
	}
	if p.Inventory == nil {
		p.Inventory = []string{}
	}
	if p.ChoiceLog == nil {
		p.ChoiceLog = []string{}
	}

	id, err := uuid.Parse(r.SessionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: session id: %v", ErrIncompatibleSave, err)
	}

	return Snapshot{
		Slot:      r.Slot,
		SessionID: id,
		Player:    &p,
		Cursor:    r.Cursor,
		SavedAt:   time.Unix(0, r.SavedAt),
	}, nil
}

// Delete removes a slot. Deleting an empty slot is not an error.
func (db *DB) Delete(ctx context.Context, slot string) error {
	if _, err := db.conn.ExecContext(ctx, "DELETE FROM saves WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("delete save %q: %w", slot, err)
	}
	return nil
}

// Slots lists saved slot names, most recent first.
func (db *DB) Slots(ctx context.Context) ([]string, error) {
	var slots []string
	err := db.conn.SelectContext(ctx, &slots, "SELECT slot FROM saves ORDER BY saved_at DESC")
	return slots, err
}

// SaveMeta stores a key-value pair.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}
