package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const pingTTL = 5 * time.Second

type Conn struct{ *pgxpool.Pool }

// Connect opens a pgx pool and verifies it with a short ping.
func Connect(ctx context.Context, url string) (*Conn, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	pctx, cancel := context.WithTimeout(ctx, pingTTL)
	defer cancel()
	if err := pool.Ping(pctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Conn{Pool: pool}, nil
}

func (c *Conn) Close() {
	if c != nil && c.Pool != nil {
		c.Pool.Close()
	}
}
