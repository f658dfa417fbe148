package commands

import (
	"errors"
	"strings"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/pkg/errs"
	"fastbite/internal/pkg/guard"
)

var (
	ErrAddCommentCommandIsNotConstructed = errors.New(
		"AddCommentCommand must be created via NewAddCommentCommand constructor",
	)
)

type AddCommentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	authorID kernel.UUID
	message  string

	guard guard.ConstructorGuard
}

func NewAddCommentCommand(orderID, authorID kernel.UUID, message string) (AddCommentCommand, error) {
	cmd := AddCommentCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAuthorID(authorID),
		cmd.setMessage(message),
	); err != nil {
		return AddCommentCommand{}, err
	}

	return cmd, nil
}

func (c AddCommentCommand) Validate() error {
	return c.guard.Validate(ErrAddCommentCommandIsNotConstructed)
}

func (c AddCommentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddCommentCommand) AuthorID() kernel.UUID {
	return c.authorID
}

func (c AddCommentCommand) Message() string {
	return c.message
}

func (c *AddCommentCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AddCommentCommand) setAuthorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.authorID = id
	return nil
}

// Length is checked by comment.NewComment.
func (c *AddCommentCommand) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewValueIsRequiredError("message")
	}
	c.message = message
	return nil
}
