//go:build unit || e2e

package builder

import (
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/internal/domain/requester"
	"lease-market/internal/domain/resource"
	reqdto "lease-market/internal/handler/dto/request"
	"lease-market/internal/infra/query"
	"lease-market/internal/usecase/commands"
	"lease-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// LeaseBuilder defaults to the "Ugly Fred" resource (10/hour) leased for 2017-01-01 00:00-03:59.
type LeaseBuilder struct {
	ContractID    uuid.UUID
	ResourceID    int64
	ResourceName  string
	PricePerHour  float64
	RequesterID   int64
	RequesterName string
	IsVIP         bool
	TimeFrom      string
	TimeTill      string
	Price         float64
	CreatedAt     time.Time
}

func NewLeaseBuilder() *LeaseBuilder {
	return &LeaseBuilder{
		ContractID:    uuid.New(),
		ResourceID:    1,
		ResourceName:  "Ugly Fred",
		PricePerHour:  10,
		RequesterID:   1,
		RequesterName: "Elon",
		IsVIP:         false,
		TimeFrom:      "2017-01-01 00:00:00",
		TimeTill:      "2017-01-01 03:59:59",
		Price:         50,
		CreatedAt:     time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *LeaseBuilder) With(mutate func(*LeaseBuilder)) *LeaseBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *LeaseBuilder) BuildResource() (*resource.Resource, error) {
	return resource.NewResource(b.ResourceID, b.ResourceName, b.PricePerHour)
}

func (b *LeaseBuilder) BuildRequester() (*requester.Requester, error) {
	return requester.NewRequester(b.RequesterID, b.RequesterName, b.IsVIP)
}

func (b *LeaseBuilder) BuildRequest() *lease.Request {
	return lease.NewRequest(b.RequesterID, b.ResourceID, b.TimeFrom, b.TimeTill)
}

func (b *LeaseBuilder) BuildPeriod() (*lease.Period, error) {
	return b.BuildRequest().Period()
}

func (b *LeaseBuilder) BuildContract() (*lease.Contract, error) {
	res, err := b.BuildResource()
	if err != nil {
		return nil, err
	}
	req, err := b.BuildRequester()
	if err != nil {
		return nil, err
	}
	period, err := b.BuildPeriod()
	if err != nil {
		return nil, err
	}
	return lease.ReconstructContract(b.ContractID, req, res, b.Price, period, b.CreatedAt), nil
}

func (b *LeaseBuilder) BuildContractRow() (query.ContractRow, error) {
	period, err := b.BuildPeriod()
	if err != nil {
		return query.ContractRow{}, err
	}
	return query.ContractRow{
		ID:                   b.ContractID,
		Price:                b.Price,
		TimeFrom:             pgtype.Timestamp{Time: period.From(), Valid: true},
		TimeTill:             pgtype.Timestamp{Time: period.Till(), Valid: true},
		CreatedAt:            pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		ResourceID:           b.ResourceID,
		ResourceName:         b.ResourceName,
		ResourcePricePerHour: b.PricePerHour,
		RequesterID:          b.RequesterID,
		RequesterName:        b.RequesterName,
		RequesterIsVIP:       b.IsVIP,
	}, nil
}

func (b *LeaseBuilder) BuildResourceRow() query.ResourceRow {
	return query.ResourceRow{ID: b.ResourceID, Name: b.ResourceName, PricePerHour: b.PricePerHour}
}

func (b *LeaseBuilder) BuildRequesterRow() query.RequesterRow {
	return query.RequesterRow{ID: b.RequesterID, Name: b.RequesterName, IsVIP: b.IsVIP}
}

func (b *LeaseBuilder) BuildCreateRequestDTO() reqdto.CreateLeaseRequest {
	requesterID, resourceID := b.RequesterID, b.ResourceID
	return reqdto.CreateLeaseRequest{
		RequesterID: &requesterID,
		ResourceID:  &resourceID,
		TimeFrom:    b.TimeFrom,
		TimeTill:    b.TimeTill,
	}
}

func (b *LeaseBuilder) BuildCreateInput() commands.CreateLeaseInput {
	return b.BuildCreateRequestDTO().ToInput()
}

func (b *LeaseBuilder) BuildView() (*queries.ContractView, error) {
	c, err := b.BuildContract()
	if err != nil {
		return nil, err
	}
	return queries.NewContractView(c), nil
}
