//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lease-market/internal/domain/lease"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestResource(t *testing.T, db DBLike, name string, pricePerHour float64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO resources (name, price_per_hour) VALUES ($1, $2) RETURNING id",
		name, pricePerHour).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestRequester(t *testing.T, db DBLike, name string, isVIP bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO requesters (name, is_vip) VALUES ($1, $2) RETURNING id",
		name, isVIP).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateTestContract stores a contract for the raw request bounds ("yyyy-mm-dd HH:mm:ss"),
// normalized the same way the lease domain does it.
func CreateTestContract(t *testing.T, db DBLike, resourceID, requesterID int64, timeFrom, timeTill string, price float64) uuid.UUID {
	t.Helper()

	from, err := time.Parse(lease.TimeLayout, timeFrom)
	require.NoError(t, err)
	till, err := time.Parse(lease.TimeLayout, timeTill)
	require.NoError(t, err)
	period := lease.NewPeriod(from, till)

	id := uuid.New()
	_, err = db.Exec(context.Background(), `
		INSERT INTO lease_contracts (id, resource_id, requester_id, price, time_from, time_till, date_from, date_till)
		VALUES ($1, $2, $3, $4, $5, $6, $7::timestamp::date, $8::timestamp::date)`,
		id, resourceID, requesterID, price, period.From(), period.Till(), period.From(), period.Till())
	require.NoError(t, err)

	return id
}

// counts stored contracts of a resource
func CountContracts(t *testing.T, db DBLike, resourceID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM lease_contracts WHERE resource_id = $1", resourceID).Scan(&n)
	require.NoError(t, err)

	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts their id sequences
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
