package repository

//go:generate mockgen -source=contract.go -destination=../../../tests/mock/repository/contract_mock.go -package=repositorymock

import (
	"context"
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/internal/infra"
	"lease-market/internal/infra/query"
	"lease-market/internal/infra/repository/converter"
	"lease-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ContractQueries interface {
	GetContractsForResource(ctx context.Context, db query.DBTX, arg query.GetContractsForResourceParams) ([]query.ContractRow, error)
	GetContractByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.ContractRow, error)
	CreateContract(ctx context.Context, db query.DBTX, arg query.CreateContractParams) (uuid.UUID, error)
}

type ContractRepository struct {
	queries ContractQueries
	db      query.DBTX
}

func NewContractRepository(queries ContractQueries, db query.DBTX) *ContractRepository {
	return &ContractRepository{
		queries: queries,
		db:      db,
	}
}

// FindForResource returns the contracts of a resource whose date range touches
// [dateFrom, dateTill], both "yyyy-mm-dd". The result is ordered by start time.
func (r *ContractRepository) FindForResource(ctx context.Context, resourceID int64, dateFrom, dateTill string) ([]*lease.Contract, error) {
	from, err := time.Parse(lease.DateLayout, dateFrom)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid date_from", err, infra.KindInvalidData)
	}
	till, err := time.Parse(lease.DateLayout, dateTill)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid date_till", err, infra.KindInvalidData)
	}

	rows, err := r.queries.GetContractsForResource(ctx, r.db, query.GetContractsForResourceParams{
		ResourceID: resourceID,
		DateFrom:   from,
		DateTill:   till,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contracts for resource", err)
	}

	contracts := make([]*lease.Contract, 0, len(rows))
	for _, row := range rows {
		c, err := converter.ContractFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert contract row", err, infra.KindInvalidData)
		}
		contracts = append(contracts, c)
	}
	return contracts, nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*lease.Contract, error) {
	row, err := r.queries.GetContractByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("contract not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find contract by ID", err)
	}

	c, err := converter.ContractFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert contract row", err, infra.KindInvalidData)
	}
	return c, nil
}

func (r *ContractRepository) Create(ctx context.Context, c *lease.Contract) (uuid.UUID, error) {
	id, err := r.queries.CreateContract(ctx, r.db, converter.ContractToCreateParams(c))
	if err != nil {
		switch {
		case pgconv.IsUniqueViolation(err):
			return uuid.Nil, infra.WrapRepoErr("contract already exists", err, infra.KindDuplicateKey)
		case pgconv.IsForeignKeyViolation(err):
			return uuid.Nil, infra.WrapRepoErr("contract references unknown resource or requester", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create contract", err)
	}
	return id, nil
}
