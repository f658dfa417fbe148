package commentrepo

import (
	"context"

	"fastbite/internal/core/domain/model/comment"
	"fastbite/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCommentRepository implements ports.CommentRepository using GORM.
type GormCommentRepository struct {
	db *gorm.DB
}

func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) Add(ctx context.Context, c comment.Comment) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCommentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]comment.Comment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CommentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	comments := make([]comment.Comment, 0, len(dtos))
	for _, dto := range dtos {
		c, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		comments = append(comments, c)
	}
	return comments, nil
}
