package queries

//go:generate mockgen -source=lease.go -destination=../../../tests/mock/queries/lease_mock.go -package=queriesmock

import (
	"context"
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/internal/infra"
	"lease-market/internal/pkg/errs"
	"lease-market/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrContractNotFound = errs.New("contract not found")
	ErrInvalidDateRange = errs.New("invalid date range")
)

// ContractView is the read model of a stored or freshly concluded contract.
type ContractView struct {
	ID            uuid.UUID `json:"id"`
	RequesterID   int64     `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	ResourceID    int64     `json:"resource_id"`
	ResourceName  string    `json:"resource_name"`
	Price         float64   `json:"price"`
	TimeFrom      time.Time `json:"time_from"`
	TimeTill      time.Time `json:"time_till"`
	Hours         []string  `json:"hours"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewContractView(c *lease.Contract) *ContractView {
	hours := c.Period().Hours()
	labels := make([]string, len(hours))
	for i, h := range hours {
		labels[i] = h.String()
	}

	return &ContractView{
		ID:            c.ID(),
		RequesterID:   c.Requester().ID(),
		RequesterName: c.Requester().Name(),
		ResourceID:    c.Resource().ID(),
		ResourceName:  c.Resource().Name(),
		Price:         c.Price(),
		TimeFrom:      c.Period().From(),
		TimeTill:      c.Period().Till(),
		Hours:         labels,
		CreatedAt:     c.CreatedAt(),
	}
}

type LeaseQueries interface {
	GetContract(ctx context.Context, id uuid.UUID) (*ContractView, error)
	ListResourceContracts(ctx context.Context, resourceID int64, dateFrom, dateTill string) ([]*ContractView, error)
}

type leaseQueriesImpl struct {
	reads shared.Reads
}

func NewLeaseQueries(reads shared.Reads) LeaseQueries {
	return &leaseQueriesImpl{reads: reads}
}

func (q *leaseQueriesImpl) GetContract(ctx context.Context, id uuid.UUID) (*ContractView, error) {
	c, err := q.reads.Contracts().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return NewContractView(c), nil
}

// ListResourceContracts takes "yyyy-mm-dd" bounds, inclusive on both ends.
func (q *leaseQueriesImpl) ListResourceContracts(ctx context.Context, resourceID int64, dateFrom, dateTill string) ([]*ContractView, error) {
	from, err := time.Parse(lease.DateLayout, dateFrom)
	if err != nil {
		return nil, errs.Mark(errs.Newf("date_from must be in %q format", "yyyy-mm-dd"), ErrInvalidDateRange)
	}
	till, err := time.Parse(lease.DateLayout, dateTill)
	if err != nil {
		return nil, errs.Mark(errs.Newf("date_till must be in %q format", "yyyy-mm-dd"), ErrInvalidDateRange)
	}
	if till.Before(from) {
		return nil, errs.Mark(errs.New("date_till must not be before date_from"), ErrInvalidDateRange)
	}

	contracts, err := q.reads.Contracts().FindForResource(ctx, resourceID, dateFrom, dateTill)
	if err != nil {
		return nil, err
	}

	views := make([]*ContractView, 0, len(contracts))
	for _, c := range contracts {
		views = append(views, NewContractView(c))
	}
	return views, nil
}
