package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool for all repositories.
// Payment writes are single-row statements, so no transaction helpers are
// needed here.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
