package commands_test

import (
	"context"
	"testing"

	"foodmate/internal/core/application/usecases/commands"
	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/menu"
	"foodmate/internal/core/domain/model/offer"
	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/core/domain/model/restaurant"
	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, account user.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, account user.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (user.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(user.Account), args.Error(1)
}

func (m *MockUserRepository) GetByName(ctx context.Context, name string) (user.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(user.Account), args.Error(1)
}

func (m *MockUserRepository) GetAllPartners(ctx context.Context) ([]*user.DeliveryPartner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.DeliveryPartner), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetAll(ctx context.Context) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurant.Restaurant), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllForCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfferRepository) GetByCode(ctx context.Context, code string) (*offer.Offer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetAll(ctx context.Context) ([]*offer.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.Offer), args.Error(1)
}

// MockUoW implements commands.UoW, commands.UserUoW, and commands.OrderUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) OrderStatusChanged(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

func (m *MockNotifier) PartnerAssigned(ctx context.Context, o *order.Order, partnerID kernel.ID) {
	m.Called(ctx, o, partnerID)
}

// Domain fixtures shared by the handler tests.

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func stars(t *testing.T, value int) kernel.Stars {
	t.Helper()
	s, err := kernel.NewStars(value)
	require.NoError(t, err)
	return s
}

func newCustomer(t *testing.T) *user.Customer {
	t.Helper()
	c, err := user.NewCustomer("Alice", "pass", "101 Maple St")
	require.NoError(t, err)
	return c
}

func newOwner(t *testing.T) *user.RestaurantOwner {
	t.Helper()
	o, err := user.NewRestaurantOwner("ChefBob", "pass")
	require.NoError(t, err)
	return o
}

func newPartner(t *testing.T) *user.DeliveryPartner {
	t.Helper()
	p, err := user.NewDeliveryPartner("Dan", "pass", "Bike")
	require.NoError(t, err)
	return p
}

func newRestaurantWithDish(t *testing.T) (*restaurant.Restaurant, *menu.Dish) {
	t.Helper()
	r, err := restaurant.NewRestaurant("Spice Garden", menu.CuisineIndian, "owner@spice.test")
	require.NoError(t, err)
	dish, err := menu.NewDish("Paneer Tikka", money(t, "12.50"), menu.DietaryVeg, menu.CuisineIndian, menu.CourseLunch)
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
