package commands

import (
	"context"

	"fastbite/internal/core/ports"
)

// Each handler depends on the narrowest unit of work it needs; the
// composition root adapts ports.UnitOfWorkFactory to these.
type (
	// TxManager controls the transaction of one command.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CommentRepoFactory interface {
		CommentRepository() ports.CommentRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW serves commands that only touch orders, such as status changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW serves checkout: it reads the customer and the catalog
	// and writes the new order in one transaction.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		ProductRepoFactory
	}

	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// CommentUoW serves comment posting. The order is read to check access
	// and the author is read for the name copied onto the comment.
	CommentUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		CommentRepoFactory
	}

	CommentUoWFactory interface {
		Create() CommentUoW
	}
)
