package queries

import (
	"errors"
	"time"

	"fastbite/internal/core/domain/model/order"
	"fastbite/internal/pkg/guard"
)

var (
	ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
		"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
	)
)

// GetOrderBacklogQuery summarizes how many orders sit in each stage and how
// long the oldest of them has been waiting.
//
// Example:
//
//	handler := NewGetOrderBacklogQueryHandler(db)
//	backlog, err := handler.Handle(ctx, NewGetOrderBacklogQuery())
//	if err != nil {
//	    return err
//	}
//	for _, stage := range backlog {
//	    fmt.Printf("%s: %d (oldest %s)\n", stage.Status, stage.Count, stage.OldestCreatedAt)
//	}
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}

// GetOrderBacklogQueryResponse is one stage of the backlog. Stages without
// orders are reported with Count 0 and a zero OldestCreatedAt.
type GetOrderBacklogQueryResponse struct {
	Status          order.Status
	Count           int64
	OldestCreatedAt time.Time
}
