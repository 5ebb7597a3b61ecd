package query

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (q *Queries) GetResourceByID(ctx context.Context, db DBTX, id int64) (ResourceRow, error) {
	sql, args, err := getResourceByIDSQL(id)
	if err != nil {
		return ResourceRow{}, err
	}
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return ResourceRow{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[ResourceRow])
}

func (q *Queries) GetRequesterByID(ctx context.Context, db DBTX, id int64) (RequesterRow, error) {
	sql, args, err := getRequesterByIDSQL(id)
	if err != nil {
		return RequesterRow{}, err
	}
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return RequesterRow{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[RequesterRow])
}

func (q *Queries) GetContractsForResource(ctx context.Context, db DBTX, arg GetContractsForResourceParams) ([]ContractRow, error) {
	sql, args, err := getContractsForResourceSQL(arg)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ContractRow])
}

func (q *Queries) GetContractByID(ctx context.Context, db DBTX, id uuid.UUID) (ContractRow, error) {
	sql, args, err := getContractByIDSQL(id)
	if err != nil {
		return ContractRow{}, err
	}
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return ContractRow{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[ContractRow])
}

func (q *Queries) CreateContract(ctx context.Context, db DBTX, arg CreateContractParams) (uuid.UUID, error) {
	sql, args, err := createContractSQL(arg)
	if err != nil {
		return uuid.Nil, err
	}
	var id uuid.UUID
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// LockResource blocks until no other transaction holds the lock for resourceID.
// The lock is released when the surrounding transaction ends.
func (q *Queries) LockResource(ctx context.Context, db DBTX, resourceID int64) error {
	sql, args, err := lockResourceSQL(resourceID)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, sql, args...)
	return err
}

func getResourceByIDSQL(id int64) (string, []any, error) {
	return dialect.From(tableResources).
		Select("id", "name", "price_per_hour").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
}

func getRequesterByIDSQL(id int64) (string, []any, error) {
	return dialect.From(tableRequesters).
		Select("id", "name", "is_vip").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
}

func contractSelect() *goqu.SelectDataset {
	return dialect.From(goqu.T(tableLeaseContracts).As("c")).
		Join(goqu.T(tableResources).As("r"), goqu.On(goqu.I("r.id").Eq(goqu.I("c.resource_id")))).
		Join(goqu.T(tableRequesters).As("m"), goqu.On(goqu.I("m.id").Eq(goqu.I("c.requester_id")))).
		Select(
			goqu.I("c.id"),
			goqu.I("c.price"),
			goqu.I("c.time_from"),
			goqu.I("c.time_till"),
			goqu.I("c.created_at"),
			goqu.I("r.id").As("resource_id"),
			goqu.I("r.name").As("resource_name"),
			goqu.I("r.price_per_hour").As("resource_price_per_hour"),
			goqu.I("m.id").As("requester_id"),
			goqu.I("m.name").As("requester_name"),
			goqu.I("m.is_vip").As("requester_is_vip"),
		)
}

// Date-level prefilter: any contract whose date range touches [DateFrom, DateTill].
func getContractsForResourceSQL(arg GetContractsForResourceParams) (string, []any, error) {
	return contractSelect().
		Where(
			goqu.I("c.resource_id").Eq(arg.ResourceID),
			goqu.I("c.date_from").Lte(arg.DateTill),
			goqu.I("c.date_till").Gte(arg.DateFrom),
		).
		Order(goqu.I("c.time_from").Asc(), goqu.I("c.id").Asc()).
		Prepared(true).
		ToSQL()
}

func getContractByIDSQL(id uuid.UUID) (string, []any, error) {
	return contractSelect().
		Where(goqu.I("c.id").Eq(id.String())).
		Prepared(true).
		ToSQL()
}

func createContractSQL(arg CreateContractParams) (string, []any, error) {
	return dialect.Insert(tableLeaseContracts).
		Rows(goqu.Record{
			"id":           arg.ID.String(),
			"resource_id":  arg.ResourceID,
			"requester_id": arg.RequesterID,
			"price":        arg.Price,
			"time_from":    arg.TimeFrom,
			"time_till":    arg.TimeTill,
			"date_from":    arg.DateFrom,
			"date_till":    arg.DateTill,
		}).
		Returning("id").
		Prepared(true).
		ToSQL()
}

func lockResourceSQL(resourceID int64) (string, []any, error) {
	return dialect.Select(goqu.Func("pg_advisory_xact_lock", resourceID)).
		Prepared(true).
		ToSQL()
}
