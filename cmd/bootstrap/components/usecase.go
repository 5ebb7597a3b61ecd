package components

import (
	"lease-market/internal/domain/lease"
	"lease-market/internal/pkg/config"
	"lease-market/internal/usecase/commands"
	"lease-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewPriceCalculator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLeaseCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLeaseQueries,
	),
)

// NewPriceCalculator builds base pricing with the daily cap, wrapped by the VIP discount.
func NewPriceCalculator(cfg config.Config) (lease.PriceCalculator, error) {
	base, err := lease.NewBasePriceCalculator(cfg.Lease.MaxHoursPerDay)
	if err != nil {
		return nil, err
	}
	vip, err := lease.NewVIPPriceCalculator(base, cfg.Lease.VIPDiscountPercent)
	if err != nil {
		return nil, err
	}
	return vip, nil
}
