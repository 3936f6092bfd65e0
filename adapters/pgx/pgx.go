// Package pgx stores each key as one row in public.storage. Values are
// whole documents, matching the port's read-full/write-full semantics.
//
// Expected schema:
//
//	CREATE TABLE public.storage (
//	    key   TEXT PRIMARY KEY,
//	    value BYTEA NOT NULL
//	);
package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jus-mpfumo/ra-auth/core"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.KeyValue = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}

func (a *Adapter) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := a.pool.QueryRow(ctx, `SELECT value FROM public.storage WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

func (a *Adapter) Set(ctx context.Context, key string, value []byte) error {
	q := `INSERT INTO public.storage (key, value) VALUES ($1, $2)
	      ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	_, err := a.pool.Exec(ctx, q, key, value)
	return err
}

func (a *Adapter) Delete(ctx context.Context, key string) error {
	_, err := a.pool.Exec(ctx, `DELETE FROM public.storage WHERE key = $1`, key)
	return err
}
