package http

import (
	"time"

	"fastbite/internal/core/application/broadcast"
	"fastbite/internal/core/domain/model/comment"
	"fastbite/internal/core/domain/model/event"
	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CartItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

type CreateOrderRequest struct {
	DeliveryAddress string            `json:"deliveryAddress" validate:"required"`
	Notes           string            `json:"notes"`
	Items           []CartItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AddCommentRequest struct {
	Message string `json:"message" validate:"required"`
}

type OrderItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customerId"`
	CustomerName    string              `json:"customerName"`
	CustomerPhone   string              `json:"customerPhone,omitempty"`
	DeliveryAddress string              `json:"deliveryAddress"`
	Notes           string              `json:"notes,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	Total           decimal.Decimal     `json:"total"`
	Status          string              `json:"status"`
	CourierID       *string             `json:"courierId,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	Version         int                 `json:"version"`
}

type OrderEventResponse struct {
	Type      string         `json:"type"`
	OrderID   string         `json:"orderId"`
	Status    string         `json:"status,omitempty"`
	Order     *OrderResponse `json:"order,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	AuthorRole string    `json:"authorRole"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

type gapResponse struct {
	Missed uint64 `json:"missed"`
}

func toOrderResponse(s order.Snapshot) OrderResponse {
	items := make([]OrderItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	var courierID *string
	if s.CourierID != nil {
		id := s.CourierID.String()
		courierID = &id
	}

	return OrderResponse{
		ID:              s.ID.String(),
		CustomerID:      s.CustomerID.String(),
		CustomerName:    s.CustomerName,
		CustomerPhone:   s.CustomerPhone,
		DeliveryAddress: s.DeliveryAddress,
		Notes:           s.Notes,
		Items:           items,
		Total:           s.Total,
		Status:          s.Status.String(),
		CourierID:       courierID,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
		Version:         s.Version,
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o.Snapshot()))
	}
	return resp
}

func toOrderEventResponse(ev event.OrderEvent) OrderEventResponse {
	resp := OrderEventResponse{
		Type:      ev.Type.String(),
		OrderID:   ev.OrderID.String(),
		Timestamp: ev.Timestamp,
	}
	if ev.Status != order.Unknown {
		resp.Status = ev.Status.String()
	}
	if ev.Order != nil {
		o := toOrderResponse(*ev.Order)
		resp.Order = &o
	}
	return resp
}

func toCommentResponse(c comment.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID().String(),
		OrderID:    c.OrderID().String(),
		AuthorID:   c.AuthorID().String(),
		AuthorName: c.AuthorName(),
		AuthorRole: c.AuthorRole().String(),
		Message:    c.Message(),
		CreatedAt:  c.CreatedAt(),
	}
}

func toProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID().String(),
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price(),
	}
}

// sseFrame turns a hub delivery into the frames written to the client: an
// optional gap frame followed by the event itself.
type sseFrame struct {
	name string
	data any
}

func orderEventFrames(d broadcast.Delivery[event.OrderEvent]) []sseFrame {
	return withGap(d.Missed, sseFrame{name: d.Event.Type.String(), data: toOrderEventResponse(d.Event)})
}

func commentFrames(d broadcast.Delivery[comment.Comment]) []sseFrame {
	return withGap(d.Missed, sseFrame{name: "COMMENT", data: toCommentResponse(d.Event)})
}

func withGap(missed uint64, frame sseFrame) []sseFrame {
	if missed == 0 {
		return []sseFrame{frame}
	}
	return []sseFrame{{name: "gap", data: gapResponse{Missed: missed}}, frame}
}
