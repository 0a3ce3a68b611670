package components

import (
	"giftsafer/internal/handler"
	"giftsafer/internal/handler/api"
	"giftsafer/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckHandler,
		api.NewInquiryHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
