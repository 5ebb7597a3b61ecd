package repository

//go:generate mockgen -source=requester.go -destination=../../../tests/mock/repository/requester_mock.go -package=repositorymock

import (
	"context"

	"lease-market/internal/domain/requester"
	"lease-market/internal/infra"
	"lease-market/internal/infra/query"
	"lease-market/internal/pkg/pgconv"
)

type RequesterQueries interface {
	GetRequesterByID(ctx context.Context, db query.DBTX, id int64) (query.RequesterRow, error)
}

type RequesterRepository struct {
	queries RequesterQueries
	db      query.DBTX
}

func NewRequesterRepository(queries RequesterQueries, db query.DBTX) *RequesterRepository {
	return &RequesterRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RequesterRepository) FindByID(ctx context.Context, id int64) (*requester.Requester, error) {
	row, err := r.queries.GetRequesterByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("requester not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find requester by ID", err)
	}

	req, err := requester.NewRequester(row.ID, row.Name, row.IsVIP)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert requester row", err, infra.KindInvalidData)
	}
	return req, nil
}
