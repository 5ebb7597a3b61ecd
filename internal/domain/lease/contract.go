package lease

import (
	"time"

	"lease-market/internal/domain/requester"
	"lease-market/internal/domain/resource"

	"github.com/google/uuid"
)

// Contract is a concluded lease. It is never modified after construction.
type Contract struct {
	id        uuid.UUID
	requester *requester.Requester
	resource  *resource.Resource
	price     float64
	period    *Period
	createdAt time.Time
}

func NewContract(req *requester.Requester, res *resource.Resource, price float64, period *Period) *Contract {
	return &Contract{
		id:        uuid.New(),
		requester: req,
		resource:  res,
		price:     price,
		period:    period,
	}
}

func ReconstructContract(
	id uuid.UUID,
	req *requester.Requester,
	res *resource.Resource,
	price float64,
	period *Period,
	createdAt time.Time,
) *Contract {
	return &Contract{
		id:        id,
		requester: req,
		resource:  res,
		price:     price,
		period:    period,
		createdAt: createdAt,
	}
}

func (c *Contract) ID() uuid.UUID                   { return c.id }
func (c *Contract) Requester() *requester.Requester { return c.requester }
func (c *Contract) Resource() *resource.Resource    { return c.resource }
func (c *Contract) Price() float64                  { return c.price }
func (c *Contract) Period() *Period                 { return c.period }
func (c *Contract) CreatedAt() time.Time            { return c.createdAt }
