package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Booking is a persisted ride request.
type Booking struct {
	ID string
	Request
	CreatedAt time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS bookings (
	id          TEXT PRIMARY KEY,
	pickup      TEXT NOT NULL,
	destination TEXT NOT NULL,
	ride_date   TEXT NOT NULL,
	ride_time   TEXT NOT NULL,
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS bookings_created_at ON bookings (created_at);
`

// Store persists bookings in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the booking store at path. An empty path opens
// an in-memory database, used when no durable location is configured.
func Open(path string) (*Store, error) {
	dsn := ":memory:"
	if path != "" {
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open booking db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping booking db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create booking schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save persists a validated request and returns the stored booking.
func (s *Store) Save(ctx context.Context, r Request) (Booking, error) {
	r = r.Normalize()
	b := Booking{
		ID:        uuid.NewString(),
		Request:   r,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bookings (id, pickup, destination, ride_date, ride_time, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, r.Pickup, r.Destination, r.Date, r.Time, b.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Booking{}, fmt.Errorf("save booking: %w", err)
	}
	return b, nil
}

// Last returns the most recent booking, the snapshot shown on revisit.
// ok is false when no booking has been saved yet.
func (s *Store) Last(ctx context.Context) (Booking, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, pickup, destination, ride_date, ride_time, created_at
		 FROM bookings ORDER BY created_at DESC, rowid DESC LIMIT 1`)

	var b Booking
	var millis int64
	err := row.Scan(&b.ID, &b.Pickup, &b.Destination, &b.Date, &b.Time, &millis)
	if errors.Is(err, sql.ErrNoRows) {
		return Booking{}, false, nil
	}
	if err != nil {
		return Booking{}, false, fmt.Errorf("load last booking: %w", err)
	}
	b.CreatedAt = time.UnixMilli(millis).UTC()
	return b, true, nil
}

// Count returns the number of stored bookings.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}
