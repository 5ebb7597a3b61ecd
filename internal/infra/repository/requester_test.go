//go:build unit

package repository_test

import (
	"context"
	"testing"

	"lease-market/internal/infra"
	"lease-market/internal/infra/query"
	"lease-market/internal/infra/repository"
	"lease-market/tests/common/builder"
	repositorymock "lease-market/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRequesterRepository_FindByID(t *testing.T) {
	vip := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.RequesterID = 3
		b.RequesterName = "Jeff"
		b.IsVIP = true
	}).BuildRequesterRow()

	tests := []struct {
		name       string
		mockReturn query.RequesterRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
		wantError  bool
	}{
		{
			name:       "success - vip flag is kept",
			mockReturn: vip,
		},
		{
			name:      "requester not found",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
			wantError: true,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
			wantError: true,
		},
		{
			name:       "blank name in storage",
			mockReturn: query.RequesterRow{ID: vip.ID, Name: "   "},
			wantKind:   infra.KindInvalidData,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockRequesterQueries(ctrl)
			mockQueries.EXPECT().GetRequesterByID(gomock.Any(), gomock.Any(), vip.ID).Return(tt.mockReturn, tt.mockError)

			repo := repository.NewRequesterRepository(mockQueries, nil)
			req, err := repo.FindByID(context.Background(), vip.ID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, req)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vip.ID, req.ID())
			assert.Equal(t, "Jeff", req.Name())
			assert.True(t, req.IsVIP())
		})
	}
}
