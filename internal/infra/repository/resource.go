package repository

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/repository/resource_mock.go -package=repositorymock

import (
	"context"

	"lease-market/internal/domain/resource"
	"lease-market/internal/infra"
	"lease-market/internal/infra/query"
	"lease-market/internal/pkg/pgconv"
)

type ResourceQueries interface {
	GetResourceByID(ctx context.Context, db query.DBTX, id int64) (query.ResourceRow, error)
	LockResource(ctx context.Context, db query.DBTX, resourceID int64) error
}

type ResourceRepository struct {
	queries ResourceQueries
	db      query.DBTX
}

func NewResourceRepository(queries ResourceQueries, db query.DBTX) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceRepository) FindByID(ctx context.Context, id int64) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	res, err := resource.NewResource(row.ID, row.Name, row.PricePerHour)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert resource row", err, infra.KindInvalidData)
	}
	return res, nil
}

// Lock takes a transaction-scoped advisory lock on the resource id. On the
// pool (outside a transaction) the lock is released immediately.
func (r *ResourceRepository) Lock(ctx context.Context, id int64) error {
	if err := r.queries.LockResource(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to lock resource", err)
	}
	return nil
}
