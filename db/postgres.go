package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultSlot is the row the scoreboard lives in.
const DefaultSlot = "playoffs"

// New connects to Postgres and keeps the scoreboard in the given row of the
// scoreboards table.
func New(ctx context.Context, connString, slot string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if slot == "" {
		slot = DefaultSlot
	}
	return &postgresDB{pool: pool, slot: slot, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	slot  string
	clock clock.Clock
}

func (db *postgresDB) Read(ctx context.Context) ([]byte, error) {
	const query = `SELECT doc FROM scoreboards WHERE id=@id`

	args := pgx.NamedArgs{
		"id": db.slot,
	}

	var doc []byte
	if err := db.pool.QueryRow(ctx, query, args).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error reading scoreboard: %w", err)
	}
	return doc, nil
}

// Write replaces the document in a single statement, so readers see either
// the old or the new scoreboard.
func (db *postgresDB) Write(ctx context.Context, doc []byte) error {
	const query = `INSERT INTO scoreboards (id, doc, updated)
					VALUES (@id, @doc, @updated)
					ON CONFLICT (id) DO UPDATE SET doc=EXCLUDED.doc, updated=EXCLUDED.updated`

	args := pgx.NamedArgs{
		"id":      db.slot,
		"doc":     doc,
		"updated": db.clock.Now(),
	}

	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error writing scoreboard: %w", err)
	}
	return nil
}

func (db *postgresDB) Close() {
	db.pool.Close()
}
