//go:build unit

package repository_test

import (
	"context"
	"testing"

	"lease-market/internal/infra"
	"lease-market/internal/infra/query"
	"lease-market/internal/infra/repository"
	"lease-market/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockResourceQueries struct {
	mock.Mock
}

func (m *MockResourceQueries) GetResourceByID(ctx context.Context, db query.DBTX, id int64) (query.ResourceRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.ResourceRow), args.Error(1)
}

func (m *MockResourceQueries) LockResource(ctx context.Context, db query.DBTX, resourceID int64) error {
	args := m.Called(ctx, db, resourceID)
	return args.Error(0)
}

func TestResourceRepository_FindByID(t *testing.T) {
	fred := builder.NewLeaseBuilder().BuildResourceRow()

	tests := []struct {
		name       string
		id         int64
		mockReturn query.ResourceRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
		wantError  bool
	}{
		{
			name:       "success",
			id:         fred.ID,
			mockReturn: fred,
		},
		{
			name:       "resource not found",
			id:         42,
			mockReturn: query.ResourceRow{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
			wantError:  true,
		},
		{
			name:       "database error",
			id:         fred.ID,
			mockReturn: query.ResourceRow{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
			wantError:  true,
		},
		{
			name:       "stored row violates domain rules",
			id:         fred.ID,
			mockReturn: query.ResourceRow{ID: fred.ID, Name: "", PricePerHour: 10},
			wantKind:   infra.KindInvalidData,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockResourceQueries)
			mockQueries.On("GetResourceByID", mock.Anything, mock.Anything, tt.id).Return(tt.mockReturn, tt.mockError)

			repo := repository.NewResourceRepository(mockQueries, nil)
			res, err := repo.FindByID(context.Background(), tt.id)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, res)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, fred.ID, res.ID())
				assert.Equal(t, fred.Name, res.Name())
				assert.Equal(t, fred.PricePerHour, res.PricePerHour())
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestResourceRepository_Lock(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockResourceQueries)
		mockQueries.On("LockResource", mock.Anything, mock.Anything, int64(1)).Return(nil)

		repo := repository.NewResourceRepository(mockQueries, nil)

		assert.NoError(t, repo.Lock(context.Background(), 1))
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockResourceQueries)
		mockQueries.On("LockResource", mock.Anything, mock.Anything, int64(1)).Return(assert.AnError)

		repo := repository.NewResourceRepository(mockQueries, nil)
		err := repo.Lock(context.Background(), 1)

		assert.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		mockQueries.AssertExpectations(t)
	})
}
