package commands

//go:generate mockgen -source=lease.go -destination=../../../tests/mock/commands/lease_mock.go -package=commandsmock

import (
	"context"

	"lease-market/internal/domain/lease"
	"lease-market/internal/pkg/errs"
	"lease-market/internal/usecase"
	"lease-market/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResourceLockFailed      = errs.New("failed to lock resource")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrLeaseProcessingFailed   = errs.New(usecase.MsgProcessingFailed)
)

type CreateLeaseInput struct {
	RequesterID int64
	ResourceID  int64
	TimeFrom    string
	TimeTill    string
}

// CreateLeaseResult holds the decision. ContractID is set only when a contract was stored.
type CreateLeaseResult struct {
	Response   *lease.Response
	ContractID uuid.UUID
}

type LeaseCommands interface {
	CreateLease(ctx context.Context, in CreateLeaseInput) (*CreateLeaseResult, error)
}

type leaseCommandsImpl struct {
	uow        shared.UnitOfWork
	calculator lease.PriceCalculator
}

func NewLeaseCommands(uow shared.UnitOfWork, calculator lease.PriceCalculator) LeaseCommands {
	return &leaseCommandsImpl{
		uow:        uow,
		calculator: calculator,
	}
}

// CreateLease decides and stores a lease while holding the resource lock, so two
// overlapping requests for one resource can never both succeed. The error return
// is reserved for infrastructure failures; rejections are in the response.
func (c *leaseCommandsImpl) CreateLease(ctx context.Context, in CreateLeaseInput) (*CreateLeaseResult, error) {
	var result *CreateLeaseResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		if err := tx.LockResource(ctx, in.ResourceID); err != nil {
			return errs.Mark(err, ErrResourceLockFailed)
		}

		op := usecase.NewLeaseOperation(tx.Contracts(), tx.Requesters(), tx.Resources(), c.calculator)
		resp := op.Run(ctx, lease.NewRequest(in.RequesterID, in.ResourceID, in.TimeFrom, in.TimeTill))
		if resp.Failed() {
			return ErrLeaseProcessingFailed
		}
		if !resp.Succeeded() {
			result = &CreateLeaseResult{Response: resp}
			return nil
		}

		id, err := tx.Contracts().Create(ctx, resp.Contract())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = &CreateLeaseResult{Response: resp, ContractID: id}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
