package converter

import (
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/internal/domain/requester"
	"lease-market/internal/domain/resource"
	"lease-market/internal/infra/query"
	"lease-market/internal/pkg/pgconv"
)

func ContractFromRow(row query.ContractRow) (*lease.Contract, error) {
	res, err := resource.NewResource(row.ResourceID, row.ResourceName, row.ResourcePricePerHour)
	if err != nil {
		return nil, err
	}
	req, err := requester.NewRequester(row.RequesterID, row.RequesterName, row.RequesterIsVIP)
	if err != nil {
		return nil, err
	}

	from, err := pgconv.TimeFromTimestamp(row.TimeFrom)
	if err != nil {
		return nil, err
	}
	till, err := pgconv.TimeFromTimestamp(row.TimeTill)
	if err != nil {
		return nil, err
	}

	return lease.ReconstructContract(
		row.ID,
		req,
		res,
		row.Price,
		lease.ReconstructPeriod(from, till),
		pgconv.TimeFromTimestamptz(row.CreatedAt),
	), nil
}

// ContractToCreateParams stores the normalized period bounds. date_till is the
// date of the exclusive end bound, so a period ending at 23:xx reaches the next day.
func ContractToCreateParams(c *lease.Contract) query.CreateContractParams {
	from := c.Period().From()
	till := c.Period().Till()
	return query.CreateContractParams{
		ID:          c.ID(),
		ResourceID:  c.Resource().ID(),
		RequesterID: c.Requester().ID(),
		Price:       c.Price(),
		TimeFrom:    from,
		TimeTill:    till,
		DateFrom:    dateOf(from),
		DateTill:    dateOf(till),
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
