package query

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceRow struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	PricePerHour float64 `db:"price_per_hour"`
}

type RequesterRow struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	IsVIP bool   `db:"is_vip"`
}

// ContractRow is a lease contract joined with its resource and requester.
type ContractRow struct {
	ID                   uuid.UUID          `db:"id"`
	Price                float64            `db:"price"`
	TimeFrom             pgtype.Timestamp   `db:"time_from"`
	TimeTill             pgtype.Timestamp   `db:"time_till"`
	CreatedAt            pgtype.Timestamptz `db:"created_at"`
	ResourceID           int64              `db:"resource_id"`
	ResourceName         string             `db:"resource_name"`
	ResourcePricePerHour float64            `db:"resource_price_per_hour"`
	RequesterID          int64              `db:"requester_id"`
	RequesterName        string             `db:"requester_name"`
	RequesterIsVIP       bool               `db:"requester_is_vip"`
}

type CreateContractParams struct {
	ID          uuid.UUID
	ResourceID  int64
	RequesterID int64
	Price       float64
	TimeFrom    time.Time
	TimeTill    time.Time
	DateFrom    time.Time
	DateTill    time.Time
}

type GetContractsForResourceParams struct {
	ResourceID int64
	DateFrom   time.Time
	DateTill   time.Time
}
