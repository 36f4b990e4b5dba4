package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const schema = `
CREATE TABLE IF NOT EXISTS scan_history (
	full_name   TEXT PRIMARY KEY,
	fingerprint TEXT NOT NULL,
	lines       INTEGER[] NOT NULL,
	scanned_at  TIMESTAMPTZ NOT NULL
)`

// Postgres is a Store backed by a PostgreSQL table. The table is
// created on connect if it does not exist.
type Postgres struct {
	conn *pgx.Conn
}

// NewPostgres connects to the database identified by the DSN and
// prepares the history table.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("history: connect: %w", err)
	}
	if _, err := conn.Exec(ctx, schema); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("history: create table: %w", err)
	}
	return &Postgres{conn: conn}, nil
}

func (p *Postgres) Put(ctx context.Context, entry Entry) error {
	_, err := p.conn.Exec(ctx, `
		INSERT INTO scan_history (full_name, fingerprint, lines, scanned_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (full_name) DO UPDATE
		SET fingerprint = EXCLUDED.fingerprint,
		    lines       = EXCLUDED.lines,
		    scanned_at  = EXCLUDED.scanned_at`,
		entry.FullName, entry.Fingerprint, toInt32(entry.Lines), entry.ScannedAt)
	if err != nil {
		return fmt.Errorf("history: put %s: %w", entry.FullName, err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, fullName, fingerprint string) (Entry, bool, error) {
	entry := Entry{FullName: fullName}
	var stored string
	var lines []int32
	err := p.conn.QueryRow(ctx, `
		SELECT fingerprint, lines, scanned_at
		FROM scan_history
		WHERE full_name = $1`,
		fullName).Scan(&stored, &lines, &entry.ScannedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("history: get %s: %w", fullName, err)
	}
	if stored != fingerprint {
		return Entry{}, false, nil
	}
	entry.Fingerprint = stored
	entry.Lines = toInt(lines)
	return entry, true, nil
}

func (p *Postgres) Close(ctx context.Context) error {
	return p.conn.Close(ctx)
}

func toInt32(lines []int) []int32 {
	out := make([]int32, len(lines))
	for i, line := range lines {
		out[i] = int32(line)
	}
	return out
}

func toInt(lines []int32) []int {
	out := make([]int, len(lines))
	for i, line := range lines {
		out[i] = int(line)
	}
	return out
}

var _ Store = (*Postgres)(nil)
