package components

import (
	"lease-market/internal/handler"
	"lease-market/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLeaseHandler,
	),
	fx.Invoke(handler.NewRouter),
)
