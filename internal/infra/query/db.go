package query

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	tableResources      = "resources"
	tableRequesters     = "requesters"
	tableLeaseContracts = "lease_contracts"
)

var dialect = goqu.Dialect("postgres")

// Queries builds statements with goqu and runs them on whatever DBTX it is given,
// so the same instance serves the pool and open transactions.
type Queries struct{}

func New() *Queries {
	return &Queries{}
}
