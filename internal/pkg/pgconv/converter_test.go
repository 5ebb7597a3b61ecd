//go:build unit

package pgconv

import (
	"database/sql"
	"testing"
	"time"

	"lease-market/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeFromTimestamp(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	t.Run("wall clock is read as UTC", func(t *testing.T) {
		got, err := TimeFromTimestamp(pgtype.Timestamp{Time: time.Date(2017, 1, 1, 1, 30, 0, 0, tokyo), Valid: true})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2017, 1, 1, 1, 30, 0, 0, time.UTC), got)
	})

	t.Run("null", func(t *testing.T) {
		_, err := TimeFromTimestamp(pgtype.Timestamp{})
		assert.ErrorIs(t, err, ErrInvalidTimestamp)
	})

	t.Run("infinity", func(t *testing.T) {
		_, err := TimeFromTimestamp(pgtype.Timestamp{Valid: true, InfinityModifier: pgtype.Infinity})
		assert.ErrorIs(t, err, ErrInvalidTimestamp)
	})
}

func TestTimeFromTimestamptz(t *testing.T) {
	at := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, at, TimeFromTimestamptz(pgtype.Timestamptz{Time: at, Valid: true}))
	assert.True(t, TimeFromTimestamptz(pgtype.Timestamptz{}).IsZero())
}

func TestErrorClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	foreignKey := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.True(t, IsNoRows(errs.Wrap(pgx.ErrNoRows, "get resource")))
	assert.False(t, IsNoRows(unique))

	assert.True(t, IsUniqueViolation(errs.Wrap(unique, "insert")))
	assert.False(t, IsUniqueViolation(foreignKey))

	assert.True(t, IsForeignKeyViolation(foreignKey))
	assert.False(t, IsForeignKeyViolation(pgx.ErrNoRows))
}
