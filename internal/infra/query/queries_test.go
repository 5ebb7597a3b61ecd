//go:build unit

package query

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetResourceByIDSQL(t *testing.T) {
	sql, args, err := getResourceByIDSQL(7)

	require.NoError(t, err)
	assert.Equal(t, `SELECT "id", "name", "price_per_hour" FROM "resources" WHERE ("id" = $1)`, sql)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestGetRequesterByIDSQL(t *testing.T) {
	sql, args, err := getRequesterByIDSQL(3)

	require.NoError(t, err)
	assert.Contains(t, sql, `"is_vip"`)
	assert.Contains(t, sql, `FROM "requesters"`)
	assert.Equal(t, []any{int64(3)}, args)
}

func TestGetContractsForResourceSQL(t *testing.T) {
	from := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)
	till := time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC)

	sql, args, err := getContractsForResourceSQL(GetContractsForResourceParams{
		ResourceID: 1,
		DateFrom:   from,
		DateTill:   till,
	})

	require.NoError(t, err)
	assert.Contains(t, sql, `FROM "lease_contracts" AS "c"`)
	assert.Contains(t, sql, `INNER JOIN "resources" AS "r" ON ("r"."id" = "c"."resource_id")`)
	assert.Contains(t, sql, `INNER JOIN "requesters" AS "m" ON ("m"."id" = "c"."requester_id")`)
	assert.Contains(t, sql, `"r"."name" AS "resource_name"`)
	assert.Contains(t, sql, `("c"."date_from" <= $2)`)
	assert.Contains(t, sql, `("c"."date_till" >= $3)`)
	assert.Contains(t, sql, `ORDER BY "c"."time_from" ASC, "c"."id" ASC`)
	assert.Equal(t, []any{int64(1), till, from}, args)
}

func TestGetContractByIDSQL(t *testing.T) {
	id := uuid.New()

	sql, args, err := getContractByIDSQL(id)

	require.NoError(t, err)
	assert.Contains(t, sql, `WHERE ("c"."id" = $1)`)
	assert.Equal(t, []any{id.String()}, args)
}

func TestCreateContractSQL(t *testing.T) {
	sql, args, err := createContractSQL(CreateContractParams{
		ID:          uuid.New(),
		ResourceID:  1,
		RequesterID: 2,
		Price:       380,
		TimeFrom:    time.Date(2017, 1, 1, 1, 30, 0, 0, time.UTC),
		TimeTill:    time.Date(2017, 1, 2, 3, 1, 0, 0, time.UTC),
		DateFrom:    time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTill:    time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Contains(t, sql, `INSERT INTO "lease_contracts"`)
	assert.Contains(t, sql, `RETURNING "id"`)
	assert.Len(t, args, 8)
}

func TestLockResourceSQL(t *testing.T) {
	sql, args, err := lockResourceSQL(5)

	require.NoError(t, err)
	assert.Equal(t, `SELECT pg_advisory_xact_lock($1)`, sql)
	assert.Equal(t, []any{int64(5)}, args)
}
