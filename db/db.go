// Package db persists the scoreboard. A DB is a single durable slot holding
// the whole serialized document; the functions in this package load, migrate,
// seed and merge the document on top of it.
package db

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("scoreboard not found")
	ErrCorruptStore = errors.New("scoreboard is corrupt")
)

type DB interface {
	// Read returns the stored document, or ErrNotFound when nothing has been
	// saved yet.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored document. A failed write leaves the previous
	// document in place.
	Write(ctx context.Context, doc []byte) error
	Close()
}
