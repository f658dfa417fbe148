package commands

import (
	"context"

	"fastbite/internal/core/domain/model/comment"
	"fastbite/internal/core/domain/model/event"
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/services"
	"fastbite/internal/core/ports"
	"fastbite/internal/pkg/errs"
)

// AddCommentCommandHandler stores a comment and, after commit, publishes the
// comment itself and a CommentAdded order event.
type AddCommentCommandHandler struct {
	uowFactory CommentUoWFactory
	publisher  ports.EventPublisher
	policy     services.AccessPolicy
	clock      kernel.Clock
}

func NewAddCommentCommandHandler(
	uowFactory CommentUoWFactory,
	publisher ports.EventPublisher,
	policy services.AccessPolicy,
	clock kernel.Clock,
) AddCommentCommandHandler {
	return AddCommentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     policy,
		clock:      clock,
	}
}

func (h *AddCommentCommandHandler) Handle(ctx context.Context, cmd AddCommentCommand) (comment.Comment, error) {
	if err := cmd.Validate(); err != nil {
		return comment.Comment{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return comment.Comment{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	author, err := uow.UserRepository().Get(ctx, cmd.AuthorID())
	if err != nil {
		return comment.Comment{}, err
	}

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return comment.Comment{}, err
	}

	if !h.policy.CanView(target, author.ID(), author.Role()) {
		return comment.Comment{}, errs.NewForbiddenError("comment on order " + cmd.OrderID().String())
	}

	written, err := comment.NewComment(kernel.NewUUID(), target.ID(), author, cmd.Message(), h.clock.Now())
	if err != nil {
		return comment.Comment{}, err
	}

	if err = uow.CommentRepository().Add(ctx, written); err != nil {
		return comment.Comment{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return comment.Comment{}, err
	}

	h.publisher.PublishComment(written)
	h.publisher.PublishOrderEvent(event.CommentAddedTo(written.OrderID(), written.CreatedAt()))
	return written, nil
}
