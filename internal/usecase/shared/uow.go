package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"

	"lease-market/internal/domain/lease"
	"lease-market/internal/domain/requester"
	"lease-market/internal/domain/resource"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Repositories bound to the pool, for single-statement reads
	Reads() Reads
}

// Tx hands out repositories bound to the running transaction.
type Tx interface {
	Resources() ResourceRepository
	Requesters() RequesterRepository
	Contracts() ContractRepository
	// LockResource serializes lease processing per resource until the transaction ends.
	LockResource(ctx context.Context, resourceID int64) error
}

type Reads interface {
	Resources() ResourceRepository
	Requesters() RequesterRepository
	Contracts() ContractRepository
}

type ResourceRepository interface {
	FindByID(ctx context.Context, id int64) (*resource.Resource, error)
}

type RequesterRepository interface {
	FindByID(ctx context.Context, id int64) (*requester.Requester, error)
}

type ContractFinder interface {
	FindForResource(ctx context.Context, resourceID int64, dateFrom, dateTill string) ([]*lease.Contract, error)
}

type ContractRepository interface {
	ContractFinder
	FindByID(ctx context.Context, id uuid.UUID) (*lease.Contract, error)
	Create(ctx context.Context, c *lease.Contract) (uuid.UUID, error)
}
