package revcache

// sqlite.go — backend SQLite de la caché de revenue (pure Go, sin CGo).
// Persiste entre ejecuciones: dos runs seguidos dentro del TTL no repiten
// el fetch bulk de WhatToMine. Al abrir se purgan las entradas caducadas.

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alejandrodnm/hashprofit/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS revenues (
    coin_id    INTEGER PRIMARY KEY,
    revenue    REAL     NOT NULL,
    fetched_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_revenues_fetched ON revenues(fetched_at);
`

// SQLite implementa Cache sobre un archivo SQLite (o ":memory:").
type SQLite struct {
	db  *sql.DB
	ttl time.Duration
}

// NewSQLite abre (o crea) la base de datos en la ruta dada, aplica el schema
// y purga las entradas más viejas que ttl.
func NewSQLite(path string, ttl time.Duration) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("revcache.NewSQLite: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("revcache.NewSQLite: apply schema: %w", err)
	}

	c := &SQLite{db: db, ttl: ttl}
	c.pruneStale(context.Background())
	return c, nil
}

// Get devuelve el estimado de la moneda si existe y no ha caducado.
func (c *SQLite) Get(ctx context.Context, coinID int) (domain.RevenueEstimate, bool, error) {
	cutoff := time.Now().UTC().Add(-c.ttl)

	var est domain.RevenueEstimate
	var fetchedAt string
	err := c.db.QueryRowContext(ctx,
		`SELECT coin_id, revenue, fetched_at FROM revenues WHERE coin_id = ? AND fetched_at >= ?`,
		coinID, cutoff,
	).Scan(&est.CoinID, &est.Revenue, &fetchedAt)
	if err == sql.ErrNoRows {
		return domain.RevenueEstimate{}, false, nil
	}
	if err != nil {
		return domain.RevenueEstimate{}, false, fmt.Errorf("revcache.Get: coin %d: %w", coinID, err)
	}

	est.FetchedAt, _ = time.Parse(time.RFC3339, fetchedAt)
	return est, true, nil
}

// Put hace upsert del estimado.
func (c *SQLite) Put(ctx context.Context, est domain.RevenueEstimate) error {
	fetchedAt := est.FetchedAt.UTC()
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO revenues (coin_id, revenue, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(coin_id) DO UPDATE SET
			revenue    = excluded.revenue,
			fetched_at = excluded.fetched_at
	`, est.CoinID, est.Revenue, fetchedAt)
	if err != nil {
		return fmt.Errorf("revcache.Put: coin %d: %w", est.CoinID, err)
	}
	return nil
}

// Close cierra la conexión a la base de datos.
func (c *SQLite) Close() error {
	return c.db.Close()
}

// pruneStale elimina entradas caducadas para mantener el archivo ligero.
func (c *SQLite) pruneStale(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-c.ttl)
	c.db.ExecContext(ctx, `DELETE FROM revenues WHERE fetched_at < ?`, cutoff)
}
