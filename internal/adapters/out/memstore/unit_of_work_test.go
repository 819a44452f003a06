package memstore_test

import (
	"context"
	"testing"

	"foodmate/internal/adapters/out/memstore"
	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/menu"
	"foodmate/internal/core/domain/model/offer"
	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/core/domain/model/restaurant"
	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/core/ports"
	"foodmate/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func begin(t *testing.T, factory *memstore.UnitOfWorkFactory) ports.UnitOfWork {
	t.Helper()
	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	return uow
}

func newRestaurantWithDish(t *testing.T) (*restaurant.Restaurant, *menu.Dish) {
	t.Helper()
	r, err := restaurant.NewRestaurant("Spice Garden", menu.CuisineIndian, "owner@spice.test")
	require.NoError(t, err)
	dish, err := menu.NewDish("Paneer Tikka", money(t, "12.50"), menu.DietaryVeg,
		menu.CuisineIndian, menu.CourseLunch)
	require.NoError(t, err)
	require.NoError(t, r.Menu().AddDish(dish))
	return r, dish
}

func newPendingOrder(t *testing.T, customerID, restaurantID kernel.ID, dish *menu.Dish) *order.Order {
	t.Helper()
	cart := order.NewCart()
	require.NoError(t, cart.AddItem(dish, 2))
	o, err := order.NewOrder(kernel.NewID(), customerID, restaurantID, "101 Maple St", cart)
	require.NoError(t, err)
	return o
}

func TestUnitOfWork_CommitPersistsAcrossTransactions(t *testing.T) {
	ctx := context.Background()
	factory := memstore.NewUnitOfWorkFactory(memstore.NewStore())

	customer, err := user.NewCustomer("Alice", "pass", "101 Maple St")
	require.NoError(t, err)

	uow := begin(t, factory)
	require.NoError(t, uow.UserRepository().Add(ctx, customer))
	require.NoError(t, uow.Commit(ctx))
	require.NoError(t, uow.Rollback(ctx)) // deferred rollback after commit is a no-op

	uow = begin(t, factory)
	defer func() { _ = uow.Rollback(ctx) }()
	account, err := uow.UserRepository().Get(ctx, customer.ID())
	require.NoError(t, err)
	restored, ok := account.(*user.Customer)
	require.True(t, ok)
	require.Equal(t, "Alice", restored.Name())
	require.Equal(t, "101 Maple St", restored.DeliveryAddress())
}

func TestUnitOfWork_RollbackDiscardsStagedWrites(t *testing.T) {
	ctx := context.Background()
	factory := memstore.NewUnitOfWorkFactory(memstore.NewStore())

	customer, err := user.NewCustomer("Alice", "pass", "101 Maple St")
	require.NoError(t, err)

	uow := begin(t, factory)
	require.NoError(t, uow.UserRepository().Add(ctx, customer))
	require.NoError(t, uow.Rollback(ctx))

	uow = begin(t, factory)
	defer func() { _ = uow.Rollback(ctx) }()
	_, err = uow.UserRepository().Get(ctx, customer.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_ReadsSeeStagedWrites(t *testing.T) {
	ctx := context.Background()
	factory := memstore.NewUnitOfWorkFactory(memstore.NewStore())

	customer, err := user.NewCustomer("Alice", "pass", "101 Maple St")
	require.NoError(t, err)

	uow := begin(t, factory)
	defer func() { _ = uow.Rollback(ctx) }()
	require.NoError(t, uow.UserRepository().Add(ctx, customer))

	account, err := uow.UserRepository().GetByName(ctx, "Alice")
	require.NoError(t, err)
	require.True(t, account.ID().IsEqual(customer.ID()))
}

func TestUserRepository_UpdateUnknownIsNotFound(t *testing.T) {
	ctx := context.Background()
	factory := memstore.NewUnitOfWorkFactory(memstore.NewStore())

	customer, err := user.NewCustomer("Alice", "pass", "101 Maple St")
	require.NoError(t, err)

	uow := begin(t, factory)
	defer func() { _ = uow.Rollback(ctx) }()
	require.ErrorIs(t, uow.UserRepository().Update(ctx, customer), errs.ErrObjectNotFound)
}

func TestUserRepository_GetAllPartnersFiltersRoles(t *testing.T) {
	ctx := context.Background()
	factory := memstore.NewUnitOfWorkFactory(memstore.NewStore())

	customer, err := user.NewCustomer("Alice", "pass", "101 Maple St")
	require.NoError(t, err)
	dan, err := user.NewDeliveryPartner("Dan", "pass", "Bike")
	require.NoError(t, err)
	eve, err := user.NewDeliveryPartner("Eve", "pass", "Scooter")
	require.NoError(t, err)

	uow := begin(t, factory)
	userRepo := uow.UserRepository()
	require.NoError(t, userRepo.Add(ctx, customer))
	require.NoError(t, userRepo.Add(ctx, dan))
	require.NoError(t, userRepo.Add(ctx, eve))
	require.NoError(t, uow.Commit(ctx))

	uow = begin(t, factory)
	defer func() { _ = uow.Rollback(ctx) }()
	partners, err := uow.UserRepository().GetAllPartners(ctx)
	require.NoError(t, err)
	require.Len(t, partners, 2)
	for _, p := range partners {
		require.Equal(t, user.RoleDeliveryPartner, p.Role())
	}
}

func TestRestaurantRepository_RoundTripKeepsMenuAndRating(t *testing.T) {
	ctx := context.Background()
	factory := memstore.NewUnitOfWorkFactory(memstore.NewStore())
	rest, dish := newRestaurantWithDish(t)

	uow := begin(t, factory)
	require.NoError(t, uow.RestaurantRepository().Add(ctx, rest))
	require.NoError(t, uow.Commit(ctx))

	uow = begin(t, factory)
	defer func() { _ = uow.Rollback(ctx) }()
	restored, err := uow.RestaurantRepository().Get(ctx, rest.ID())
	require.NoError(t, err)
	require.Equal(t, "Spice Garden", restored.Name())
	require.InDelta(t, 4.5, restored.Rating().Average(), 0.0001)

	restoredDish, found := restored.Menu().DishByID(dish.ID())
	require.True(t, found)
	require.Equal(t, "Paneer Tikka", restoredDish.Name())
	require.True(t, restoredDish.Price().IsEqual(money(t, "12.50")))
}

func TestRestaurantRepository_MutationsAreInvisibleUntilUpdate(t *testing.T) {
	ctx := context.Background()
	factory := memstore.NewUnitOfWorkFactory(memstore.NewStore())
	rest, _ := newRestaurantWithDish(t)

	uow := begin(t, factory)
	require.NoError(t, uow.RestaurantRepository().Add(ctx, rest))
	require.NoError(t, uow.Commit(ctx))

	// mutate a rehydrated copy without persisting it
	uow = begin(t, factory)
	loaded, err := uow.RestaurantRepository().Get(ctx, rest.ID())
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Menu().RemoveDishByName("Paneer Tikka"))
	require.NoError(t, uow.Rollback(ctx))

	uow = begin(t, factory)
	defer func() { _ = uow.Rollback(ctx) }()
	reloaded, err := uow.RestaurantRepository().Get(ctx, rest.ID())
	require.NoError(t, err)
	require.Len(t, reloaded.Menu().Dishes(), 1)
}

func TestOrderRepository_UnassignedPredicate(t *testing.T) {
	ctx := context.Background()
	factory := memstore.NewUnitOfWorkFactory(memstore.NewStore())
	rest, dish := newRestaurantWithDish(t)
	customerID := kernel.NewID()

	unplaced := newPendingOrder(t, customerID, rest.ID(), dish)

	placed := newPendingOrder(t, customerID, rest.ID(), dish)
	require.NoError(t, placed.Place())

	assigned := newPendingOrder(t, customerID, rest.ID(), dish)
	require.NoError(t, assigned.Place())
	require.NoError(t, assigned.AssignPartner(kernel.NewID()))

	uow := begin(t, factory)
	orderRepo := uow.OrderRepository()
	for _, o := range []*order.Order{unplaced, placed, assigned} {
		require.NoError(t, orderRepo.Add(ctx, o))
	}
	require.NoError(t, uow.Commit(ctx))

	uow = begin(t, factory)
	defer func() { _ = uow.Rollback(ctx) }()
	waiting, err := uow.OrderRepository().GetAllUnassigned(ctx)
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	require.True(t, waiting[0].ID().IsEqual(placed.ID()))

	active, err := uow.OrderRepository().GetAllActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 3)

	mine, err := uow.OrderRepository().GetAllForCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, mine, 3)
}

func TestOrderRepository_RoundTripKeepsPricingAndChat(t *testing.T) {
	ctx := context.Background()
	factory := memstore.NewUnitOfWorkFactory(memstore.NewStore())
	rest, dish := newRestaurantWithDish(t)

	aggregate := newPendingOrder(t, kernel.NewID(), rest.ID(), dish)
	require.NoError(t, aggregate.ApplyOffer("FIRST30", money(t, "10.00")))
	require.NoError(t, aggregate.AddTip(money(t, "2.00")))
	require.NoError(t, aggregate.Place())
	require.NoError(t, aggregate.AdvanceTo(order.Preparing))

	uow := begin(t, factory)
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Commit(ctx))

	uow = begin(t, factory)
	defer func() { _ = uow.Rollback(ctx) }()
	restored, err := uow.OrderRepository().Get(ctx, aggregate.ID())
	require.NoError(t, err)
	require.Equal(t, order.Preparing, restored.Status())
	require.True(t, restored.IsPlaced())
	require.True(t, restored.Subtotal().IsEqual(money(t, "25.00")))
	require.Equal(t, "FIRST30", restored.OfferCode())
	require.True(t, restored.Total().IsEqual(money(t, "17.00")))
	require.Len(t, restored.Messages(), 1)
	require.Equal(t, order.SystemBotSender, restored.Messages()[0].Sender())
}

func TestOfferRepository_CodeLookupAndListing(t *testing.T) {
	ctx := context.Background()
	factory := memstore.NewUnitOfWorkFactory(memstore.NewStore())

	first30, err := offer.NewOffer("FIRST30", money(t, "30"), false, money(t, "50"), false)
	require.NoError(t, err)

	uow := begin(t, factory)
	require.NoError(t, uow.OfferRepository().Add(ctx, first30))
	require.NoError(t, uow.Commit(ctx))

	uow = begin(t, factory)
	defer func() { _ = uow.Rollback(ctx) }()
	promo, err := uow.OfferRepository().GetByCode(ctx, "FIRST30")
	require.NoError(t, err)
	require.Equal(t, "FIRST30", promo.Code())

	_, err = uow.OfferRepository().GetByCode(ctx, "NOSUCH")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	offers, err := uow.OfferRepository().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 1)
}

func TestStore_SeedPopulatesDemoMarketplace(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()
	require.NoError(t, store.Seed())
	factory := memstore.NewUnitOfWorkFactory(store)

	uow := begin(t, factory)
	defer func() { _ = uow.Rollback(ctx) }()

	restaurants, err := uow.RestaurantRepository().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)

	alice, err := uow.UserRepository().GetByName(ctx, "Alice")
	require.NoError(t, err)
	require.Equal(t, user.RoleCustomer, alice.Role())

	chefBob, err := uow.UserRepository().GetByName(ctx, "ChefBob")
	require.NoError(t, err)
	owner, ok := chefBob.(*user.RestaurantOwner)
	require.True(t, ok)
	require.Len(t, owner.RestaurantIDs(), 2)

	partners, err := uow.UserRepository().GetAllPartners(ctx)
	require.NoError(t, err)
	require.Len(t, partners, 1)
	require.Equal(t, "Bike", partners[0].VehicleType())

	offers, err := uow.OfferRepository().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	require.Equal(t, "FIRST30", offers[0].Code())
	require.Equal(t, "LOYALTY50", offers[1].Code())
}
