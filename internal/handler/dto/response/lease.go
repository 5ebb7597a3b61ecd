package response

import (
	"time"

	"lease-market/internal/domain/lease"
	"lease-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ContractResponse struct {
	ID            uuid.UUID `json:"id"`
	RequesterID   int64     `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	ResourceID    int64     `json:"resource_id"`
	ResourceName  string    `json:"resource_name"`
	Price         float64   `json:"price"`
	TimeFrom      string    `json:"time_from"`
	TimeTill      string    `json:"time_till"`
	Hours         []string  `json:"hours"`
	CreatedAt     string    `json:"created_at"`
}

// ErrorsResponse is returned when a lease request is rejected.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

var timeToString = copier.TypeConverter{
	SrcType: time.Time{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		t, ok := src.(time.Time)
		if !ok || t.IsZero() {
			return "", nil
		}
		return t.Format(lease.TimeLayout), nil
	},
}

func FromContractView(v *queries.ContractView) (*ContractResponse, error) {
	var res ContractResponse
	err := copier.CopyWithOption(&res, v, copier.Option{
		DeepCopy:   true,
		Converters: []copier.TypeConverter{timeToString},
	})
	if err != nil {
		return nil, err
	}
	if res.Hours == nil {
		res.Hours = []string{}
	}
	return &res, nil
}

func FromContractViews(views []*queries.ContractView) ([]*ContractResponse, error) {
	res := make([]*ContractResponse, len(views))
	for i, v := range views {
		r, err := FromContractView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
