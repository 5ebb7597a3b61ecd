package request

import (
	"lease-market/internal/usecase/commands"
)

// Timestamps are "yyyy-mm-dd HH:mm:ss"; their format is checked by the lease domain, not by binding.
// Ids are pointers so binding only rejects absent ids; unknown ids, 0 included, are reported by the lease domain.
type CreateLeaseRequest struct {
	RequesterID *int64 `json:"requester_id" binding:"required"`
	ResourceID  *int64 `json:"resource_id" binding:"required"`
	TimeFrom    string `json:"time_from" binding:"required"`
	TimeTill    string `json:"time_till" binding:"required"`
}

func (r CreateLeaseRequest) ToInput() commands.CreateLeaseInput {
	return commands.CreateLeaseInput{
		RequesterID: *r.RequesterID,
		ResourceID:  *r.ResourceID,
		TimeFrom:    r.TimeFrom,
		TimeTill:    r.TimeTill,
	}
}

type ListResourceLeasesQuery struct {
	DateFrom string `form:"date_from" binding:"required"`
	DateTill string `form:"date_till" binding:"required"`
}
