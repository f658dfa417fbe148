package queries

import (
	"context"
	"database/sql"

	"fastbite/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderBacklogQueryHandler aggregates directly in SQL instead of loading
// aggregates through the repository.
type GetOrderBacklogQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderBacklogQueryHandler(db *gorm.DB) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{db: db}
}

// Handle returns one entry per lifecycle stage, in lifecycle order.
func (h GetOrderBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBacklogQuery,
) ([]GetOrderBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	byStatus := make(map[order.Status]GetOrderBacklogQueryResponse)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			MIN(created_at)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status int
			count  int64
			oldest sql.NullTime
		)
		if err = rows.Scan(&status, &count, &oldest); err != nil {
			return nil, err
		}

		stage := GetOrderBacklogQueryResponse{Status: order.Status(status), Count: count}
		if oldest.Valid {
			stage.OldestCreatedAt = oldest.Time.UTC()
		}
		byStatus[stage.Status] = stage
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	backlog := make([]GetOrderBacklogQueryResponse, 0, len(order.AllStatuses()))
	for _, s := range order.AllStatuses() {
		stage, ok := byStatus[s]
		if !ok {
			stage = GetOrderBacklogQueryResponse{Status: s}
		}
		backlog = append(backlog, stage)
	}
	return backlog, nil
}
