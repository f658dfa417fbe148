// Package commentrepo persists order comments.
package commentrepo

import (
	"time"

	"fastbite/internal/core/domain/model/comment"
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type CommentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_order_created,priority:1"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	AuthorName string    `gorm:"type:varchar(255);not null"`
	AuthorRole string    `gorm:"type:varchar(32);not null"`
	Message    string    `gorm:"type:varchar(2000);not null"`
	CreatedAt  time.Time `gorm:"not null;index:idx_comments_order_created,priority:2;autoCreateTime:false"`
}

func (CommentDTO) TableName() string {
	return "comments"
}

func fromDomain(c comment.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID().Bytes(),
		OrderID:    c.OrderID().Bytes(),
		AuthorID:   c.AuthorID().Bytes(),
		AuthorName: c.AuthorName(),
		AuthorRole: c.AuthorRole().String(),
		Message:    c.Message(),
		CreatedAt:  c.CreatedAt(),
	}
}

func toDomain(dto CommentDTO) (comment.Comment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return comment.Comment{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return comment.Comment{}, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return comment.Comment{}, err
	}

	role, err := user.ParseRole(dto.AuthorRole)
	if err != nil {
		return comment.Comment{}, err
	}

	return comment.RestoreComment(id, orderID, authorID, dto.AuthorName, role, dto.Message, dto.CreatedAt.UTC()), nil
}
