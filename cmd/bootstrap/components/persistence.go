package components

import (
	"lease-market/internal/infra/query"
	"lease-market/internal/infra/uow"
	"lease-market/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		query.New,
		uow.NewPostgresUoW,
		NewReads,
	),
)

func NewReads(u shared.UnitOfWork) shared.Reads {
	return u.Reads()
}
