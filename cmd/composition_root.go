package cmd

import (
	"log/slog"
	"math/rand"
	"time"

	"foodmate/internal/adapters/out/memstore"
	"foodmate/internal/adapters/out/notify"
	"foodmate/internal/core/application/usecases/commands"
	"foodmate/internal/core/application/usecases/queries"
	"foodmate/internal/core/domain/services"
	"foodmate/internal/core/ports"
)

type CompositionRoot struct {
	store      *memstore.Store
	uowFactory ports.UnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, store *memstore.Store, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		store:      store,
		uowFactory: memstore.NewUnitOfWorkFactory(store),
		notifier:   notify.NewLogNotifier(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateAddDishCommandHandler() commands.AddDishCommandHandler {
	return commands.NewAddDishCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateRemoveDishCommandHandler() commands.RemoveDishCommandHandler {
	return commands.NewRemoveDishCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateApplyOfferCommandHandler() commands.ApplyOfferCommandHandler {
	return commands.NewApplyOfferCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAddTipCommandHandler() commands.AddTipCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddTipCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(
		c.fullUoWFactory(),
		c.notifier,
		services.NewUPI(rand.NewSource(time.Now().UnixNano())),
		services.NewCashOnDelivery(),
	)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.fullUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	return commands.NewAssignPartnerCommandHandler(c.fullUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	return commands.NewRateOrderCommandHandler(c.fullUoWFactory(),
		services.NewRatingAggregator(c.logger))
}

func (c *CompositionRoot) CreateFilterDishesQueryHandler() queries.FilterDishesQueryHandler {
	return queries.NewFilterDishesQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOffersQueryHandler() queries.GetOffersQueryHandler {
	return queries.NewGetOffersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetUserProfileQueryHandler() queries.GetUserProfileQueryHandler {
	return queries.NewGetUserProfileQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
