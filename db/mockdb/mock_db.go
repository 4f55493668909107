package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) Read(ctx context.Context) ([]byte, error) {
	args := db.Called(ctx)

	var b []byte
	if args.Get(0) != nil {
		b = args.Get(0).([]byte)
	}

	return b, args.Error(1)
}

func (db *DB) Write(ctx context.Context, doc []byte) error {
	args := db.Called(ctx, doc)
	return args.Error(0)
}

func (db *DB) Close() {
	db.Called()
}
