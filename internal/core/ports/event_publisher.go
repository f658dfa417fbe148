package ports

import (
	"fastbite/internal/core/domain/model/comment"
	"fastbite/internal/core/domain/model/event"
)

// EventPublisher hands committed changes to live observers. Publishing never
// blocks and never fails.
type EventPublisher interface {
	PublishOrderEvent(ev event.OrderEvent)
	PublishComment(c comment.Comment)
}
