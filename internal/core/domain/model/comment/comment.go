// Package comment models the free-text messages attached to an order by
// its customer, the kitchen or the courier.
package comment

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/model/user"
	"fastbite/internal/pkg/errs"
)

// MaxMessageLength is counted in characters, not bytes.
const MaxMessageLength = 500

var ErrCommentIsNotConstructed = errors.New("Comment must be created via NewComment constructor")

// Comment is immutable. Author name and role are copied from the author when
// the comment is written.
type Comment struct {
	id         kernel.UUID
	orderID    kernel.UUID
	authorID   kernel.UUID
	authorName string
	authorRole user.Role
	message    string
	createdAt  time.Time

	isConstructed bool
}

func NewComment(id, orderID kernel.UUID, author *user.User, message string, now time.Time) (Comment, error) {
	if err := author.Validate(); err != nil {
		return Comment{}, err
	}

	c := Comment{
		authorID:      author.ID(),
		authorName:    author.Name(),
		authorRole:    author.Role(),
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setMessage(message),
	); err != nil {
		return Comment{}, err
	}

	return c, nil
}

func RestoreComment(
	id, orderID, authorID kernel.UUID,
	authorName string,
	authorRole user.Role,
	message string,
	createdAt time.Time,
) Comment {
	return Comment{
		id:            id,
		orderID:       orderID,
		authorID:      authorID,
		authorName:    authorName,
		authorRole:    authorRole,
		message:       message,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

func (c Comment) Validate() error {
	if !c.isConstructed {
		return ErrCommentIsNotConstructed
	}
	return nil
}

func (c Comment) ID() kernel.UUID {
	return c.id
}

func (c Comment) OrderID() kernel.UUID {
	return c.orderID
}

func (c Comment) AuthorID() kernel.UUID {
	return c.authorID
}

func (c Comment) AuthorName() string {
	return c.authorName
}

func (c Comment) AuthorRole() user.Role {
	return c.authorRole
}

func (c Comment) Message() string {
	return c.message
}

func (c Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Comment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *Comment) setMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	if n := utf8.RuneCountInString(message); n > MaxMessageLength {
		return errs.NewValueIsOutOfRangeError("message length", n, 1, MaxMessageLength)
	}
	c.message = message
	return nil
}
