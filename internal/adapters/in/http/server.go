package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fastbite/internal/core/application/broadcast"
	"fastbite/internal/core/application/usecases/commands"
	"fastbite/internal/core/application/usecases/queries"
	"fastbite/internal/core/domain/model/comment"
	"fastbite/internal/core/domain/model/event"
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// EventStreams hands out live subscriptions for the SSE endpoints.
type EventStreams interface {
	AllOrderEvents() (*broadcast.Subscription[event.OrderEvent], error)
	OrderEvents(orderID kernel.UUID) (*broadcast.Subscription[event.OrderEvent], error)
	OrderComments(orderID kernel.UUID) (*broadcast.Subscription[comment.Comment], error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	AddComment        commands.AddCommentCommandHandler

	GetOrder              queries.GetOrderQueryHandler
	GetCustomerOrders     queries.GetCustomerOrdersQueryHandler
	GetKitchenOrders      queries.GetKitchenOrdersQueryHandler
	GetDeliveryOrders     queries.GetDeliveryOrdersQueryHandler
	GetAllOrders          queries.GetAllOrdersQueryHandler
	GetOrderComments      queries.GetOrderCommentsQueryHandler
	HasAccess             queries.HasAccessQueryHandler
	ListAvailableProducts queries.ListAvailableProductsQueryHandler
}

// Server translates HTTP requests into commands and queries and streams hub
// events to connected clients.
type Server struct {
	h         Handlers
	streams   EventStreams
	keepAlive time.Duration
	logger    *slog.Logger
}

func NewServer(h Handlers, streams EventStreams, keepAlive time.Duration, logger *slog.Logger) *Server {
	return &Server{
		h:         h,
		streams:   streams,
		keepAlive: keepAlive,
		logger:    logger.With("component", "http"),
	}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// ListProducts handles GET /api/products.
func (s *Server) ListProducts(c echo.Context) error {
	products, err := s.h.ListAvailableProducts.Handle(c.Request().Context(), queries.NewListAvailableProductsQuery())
	if err != nil {
		return s.fail(c, err)
	}

	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	caller, _ := callerFrom(c)
	items := make([]commands.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return s.fail(c, err)
		}
		items = append(items, commands.CartItem{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(caller.ID, req.DeliveryAddress, req.Notes, items)
	if err != nil {
		return s.fail(c, err)
	}

	placed, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toOrderResponse(placed.Snapshot()))
}

// ListAllOrders handles GET /api/orders.
func (s *Server) ListAllOrders(c echo.Context) error {
	orders, err := s.h.GetAllOrders.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListMyOrders handles GET /api/orders/my.
func (s *Server) ListMyOrders(c echo.Context) error {
	caller, _ := callerFrom(c)
	query, err := queries.NewGetCustomerOrdersQuery(caller.ID)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.h.GetCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListKitchenOrders handles GET /api/orders/kitchen.
func (s *Server) ListKitchenOrders(c echo.Context) error {
	orders, err := s.h.GetKitchenOrders.Handle(c.Request().Context(), queries.NewGetKitchenOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListDeliveryOrders handles GET /api/orders/delivery.
func (s *Server) ListDeliveryOrders(c echo.Context) error {
	orders, err := s.h.GetDeliveryOrders.Handle(c.Request().Context(), queries.NewGetDeliveryOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	caller, _ := callerFrom(c)
	query, err := queries.NewGetOrderQuery(orderID, caller.ID, caller.Role)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(o.Snapshot()))
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var req UpdateStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err = c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.fail(c, err)
	}

	caller, _ := callerFrom(c)
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, caller.ID, caller.Role)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderResponse(updated.Snapshot()))
}

// AddComment handles POST /api/orders/:id/comments.
func (s *Server) AddComment(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	var req AddCommentRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err = c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	caller, _ := callerFrom(c)
	cmd, err := commands.NewAddCommentCommand(orderID, caller.ID, req.Message)
	if err != nil {
		return s.fail(c, err)
	}

	written, err := s.h.AddComment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toCommentResponse(written))
}

// ListComments handles GET /api/orders/:id/comments.
func (s *Server) ListComments(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err)
	}

	caller, _ := callerFrom(c)
	query, err := queries.NewGetOrderCommentsQuery(orderID, caller.ID, caller.Role)
	if err != nil {
		return s.fail(c, err)
	}

	comments, err := s.h.GetOrderComments.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	resp := make([]CommentResponse, 0, len(comments))
	for _, cm := range comments {
		resp = append(resp, toCommentResponse(cm))
	}
	return c.JSON(http.StatusOK, resp)
}

// StreamAllOrders handles GET /api/orders/stream.
func (s *Server) StreamAllOrders(c echo.Context) error {
	sub, err := s.streams.AllOrderEvents()
	if err != nil {
		return s.unavailable(c, err)
	}
	return stream(c, sub, s.keepAlive, orderEventFrames)
}

// StreamOrder handles GET /api/orders/:id/stream.
func (s *Server) StreamOrder(c echo.Context) error {
	orderID, ok, err := s.authorizeStream(c)
	if !ok {
		return err
	}

	sub, err := s.streams.OrderEvents(orderID)
	if err != nil {
		return s.unavailable(c, err)
	}
	return stream(c, sub, s.keepAlive, orderEventFrames)
}

// StreamComments handles GET /api/orders/:id/comments/stream.
func (s *Server) StreamComments(c echo.Context) error {
	orderID, ok, err := s.authorizeStream(c)
	if !ok {
		return err
	}

	sub, err := s.streams.OrderComments(orderID)
	if err != nil {
		return s.unavailable(c, err)
	}
	return stream(c, sub, s.keepAlive, commentFrames)
}

// authorizeStream resolves the order id from the path and checks that the
// caller may follow it. A missing order is reported as forbidden. When ok is
// false the response has already been written.
func (s *Server) authorizeStream(c echo.Context) (kernel.UUID, bool, error) {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, false, s.fail(c, err)
	}

	caller, _ := callerFrom(c)
	query, err := queries.NewHasAccessQuery(orderID, caller.ID, caller.Role)
	if err != nil {
		return kernel.UUID{}, false, s.fail(c, err)
	}

	allowed, err := s.h.HasAccess.Handle(c.Request().Context(), query)
	if err != nil {
		return kernel.UUID{}, false, s.fail(c, err)
	}
	if !allowed {
		return kernel.UUID{}, false, c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "forbidden: no access to order " + orderID.String(),
		})
	}
	return orderID, true, nil
}

func (s *Server) unavailable(c echo.Context, err error) error {
	if errors.Is(err, broadcast.ErrHubClosed) {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "event streams are shutting down",
		})
	}
	return s.fail(c, err)
}
