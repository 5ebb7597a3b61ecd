package usecase

import (
	"context"
	"log/slog"

	"lease-market/internal/domain/lease"
	"lease-market/internal/domain/requester"
	"lease-market/internal/domain/resource"
	"lease-market/internal/infra"
	"lease-market/internal/pkg/errs"
	"lease-market/internal/usecase/shared"
)

// MsgProcessingFailed is the only message a caller sees when a collaborator fails.
const MsgProcessingFailed = "failed to process lease request"

// LeaseOperation decides a single lease request. It never returns an error:
// every outcome, including collaborator failures, ends up in the response.
type LeaseOperation struct {
	contracts  shared.ContractFinder
	requesters shared.RequesterRepository
	resources  shared.ResourceRepository
	calculator lease.PriceCalculator
}

func NewLeaseOperation(
	contracts shared.ContractFinder,
	requesters shared.RequesterRepository,
	resources shared.ResourceRepository,
	calculator lease.PriceCalculator,
) *LeaseOperation {
	return &LeaseOperation{
		contracts:  contracts,
		requesters: requesters,
		resources:  resources,
		calculator: calculator,
	}
}

func (o *LeaseOperation) Run(ctx context.Context, req *lease.Request) *lease.Response {
	contract, err := o.run(ctx, req)
	if err != nil {
		if !lease.IsBusinessError(err) {
			slog.Error("lease operation failed",
				"resource_id", req.ResourceID(),
				"requester_id", req.RequesterID(),
				"error", err.Error())
			return lease.NewFailureResponse(MsgProcessingFailed)
		}
		slog.Info("lease request rejected",
			"resource_id", req.ResourceID(),
			"requester_id", req.RequesterID(),
			"reason", err.Error())
		return lease.NewErrorResponse(err.Error())
	}
	return lease.NewContractResponse(contract)
}

func (o *LeaseOperation) run(ctx context.Context, req *lease.Request) (*lease.Contract, error) {
	res, err := o.findResource(ctx, req.ResourceID())
	if err != nil {
		return nil, err
	}

	requesterEntity, err := o.findRequester(ctx, req.RequesterID())
	if err != nil {
		return nil, err
	}

	period, err := req.Period()
	if err != nil {
		return nil, err
	}

	if err := o.checkAvailability(ctx, res, period); err != nil {
		return nil, err
	}

	price := o.calculator.CalculatePrice(requesterEntity, res, period)

	return lease.NewContract(requesterEntity, res, price, period), nil
}

func (o *LeaseOperation) findResource(ctx context.Context, id int64) (*resource.Resource, error) {
	res, err := o.resources.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, lease.NewResourceNotFoundError(id)
		}
		return nil, errs.Wrap(err, "find resource")
	}
	return res, nil
}

func (o *LeaseOperation) findRequester(ctx context.Context, id int64) (*requester.Requester, error) {
	req, err := o.requesters.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, lease.NewRequesterNotFoundError(id)
		}
		return nil, errs.Wrap(err, "find requester")
	}
	return req, nil
}

// checkAvailability stops at the first contract that shares an hour with period.
func (o *LeaseOperation) checkAvailability(ctx context.Context, res *resource.Resource, period *lease.Period) error {
	contracts, err := o.contracts.FindForResource(
		ctx,
		res.ID(),
		period.From().Format(lease.DateLayout),
		period.Till().Format(lease.DateLayout),
	)
	if err != nil {
		return errs.Wrap(err, "find contracts for resource")
	}

	for _, c := range contracts {
		err := period.CheckIntersections(c.Period().Hours())
		if err == nil {
			continue
		}
		var conflict *lease.HoursIntersectionError
		if errs.As(err, &conflict) {
			return conflict.ForResource(res.ID(), res.Name())
		}
		return err
	}
	return nil
}
