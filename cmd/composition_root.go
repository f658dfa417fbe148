package cmd

import (
	"log/slog"

	"fastbite/internal/adapters/out/postgres"
	"fastbite/internal/core/application/broadcast"
	"fastbite/internal/core/application/usecases/commands"
	"fastbite/internal/core/application/usecases/queries"
	"fastbite/internal/core/domain/model/kernel"
	"fastbite/internal/core/domain/services"
	"fastbite/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	broadcaster *broadcast.Broadcaster
	policy      services.AccessPolicy
	clock       kernel.Clock
	logger      *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		broadcaster: broadcast.NewBroadcaster(logger, cfg.HubBufferLimit),
		policy:      services.NewAccessPolicy(),
		clock:       kernel.SystemClock(),
		logger:      logger,
	}
}

func (c *CompositionRoot) Broadcaster() *broadcast.Broadcaster {
	return c.broadcaster
}

func (c *CompositionRoot) Clock() kernel.Clock {
	return c.clock
}

// UnitOfWork starts an unbound unit of work, for seeding.
func (c *CompositionRoot) UnitOfWork() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.broadcaster, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.broadcaster, c.policy, c.clock, c.logger)
}

func (c *CompositionRoot) CreateAddCommentCommandHandler() commands.AddCommentCommandHandler {
	var f commands.CommentUoWFactory = FuncCommentUoWFactory(func() commands.CommentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCommentCommandHandler(f, c.broadcaster, c.policy, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.UnitOfWork().OrderRepository(), c.policy)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.UnitOfWork().OrderRepository())
}

func (c *CompositionRoot) CreateGetKitchenOrdersQueryHandler() queries.GetKitchenOrdersQueryHandler {
	return queries.NewGetKitchenOrdersQueryHandler(c.UnitOfWork().OrderRepository())
}

func (c *CompositionRoot) CreateGetDeliveryOrdersQueryHandler() queries.GetDeliveryOrdersQueryHandler {
	return queries.NewGetDeliveryOrdersQueryHandler(c.UnitOfWork().OrderRepository())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.UnitOfWork().OrderRepository())
}

func (c *CompositionRoot) CreateGetOrderCommentsQueryHandler() queries.GetOrderCommentsQueryHandler {
	uow := c.UnitOfWork()
	return queries.NewGetOrderCommentsQueryHandler(uow.OrderRepository(), uow.CommentRepository(), c.policy)
}

func (c *CompositionRoot) CreateHasAccessQueryHandler() queries.HasAccessQueryHandler {
	return queries.NewHasAccessQueryHandler(c.UnitOfWork().OrderRepository(), c.policy)
}

func (c *CompositionRoot) CreateListAvailableProductsQueryHandler() queries.ListAvailableProductsQueryHandler {
	return queries.NewListAvailableProductsQueryHandler(c.UnitOfWork().ProductRepository())
}

func (c *CompositionRoot) CreateGetOrderBacklogQueryHandler() queries.GetOrderBacklogQueryHandler {
	return queries.NewGetOrderBacklogQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncCommentUoWFactory func() commands.CommentUoW

func (f FuncCommentUoWFactory) Create() commands.CommentUoW {
	return f()
}
