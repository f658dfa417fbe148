package http

import (
	"log/slog"

	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance with every route registered.
func NewRouter(s *Server, verifier TokenVerifier, m *metrics.Metrics, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(Instrument(m))

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	api := e.Group("/api", Authenticate(verifier))
	api.GET("/products", s.ListProducts)

	orders := api.Group("/orders")
	orders.POST("", s.CreateOrder, RequireRoles(user.Customer))
	orders.GET("", s.ListAllOrders, RequireRoles(user.Kitchen, user.Courier))
	orders.GET("/my", s.ListMyOrders)
	orders.GET("/kitchen", s.ListKitchenOrders, RequireRoles(user.Kitchen))
	orders.GET("/delivery", s.ListDeliveryOrders, RequireRoles(user.Courier))
	orders.GET("/stream", s.StreamAllOrders, RequireRoles(user.Kitchen, user.Courier))
	orders.GET("/:id", s.GetOrder)
	orders.PATCH("/:id/status", s.UpdateOrderStatus)
	orders.GET("/:id/stream", s.StreamOrder)
	orders.POST("/:id/comments", s.AddComment)
	orders.GET("/:id/comments", s.ListComments)
	orders.GET("/:id/comments/stream", s.StreamComments)

	return e
}
