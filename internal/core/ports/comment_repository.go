package ports

import (
	"context"

	"fastbite/internal/core/domain/model/comment"
	"fastbite/internal/core/domain/model/kernel"
)

type CommentRepository interface {
	Add(ctx context.Context, c comment.Comment) error

	// ListByOrder returns the order's comments, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]comment.Comment, error)
}
