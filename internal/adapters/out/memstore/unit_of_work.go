package memstore

import (
	"context"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/offer"
	"foodmate/internal/core/ports"
)

// UnitOfWorkFactory creates UnitOfWork instances bound to one store.
// Each business operation gets a fresh unit of work with its own staging
// area, so concurrent handlers never share transaction state.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory over the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork ready for Begin.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements ports.UnitOfWork over the in-memory store.
//
// Begin acquires the store mutex and Commit/Rollback release it, so at most
// one transaction is in flight at a time. Writes stage on the unit of work
// and only reach the store on Commit; reads see staged writes first, giving
// the transaction read-your-own-writes semantics.
type UnitOfWork struct {
	store *Store
	began bool
	done  bool

	stagedUsers       map[kernel.ID]userRecord
	stagedRestaurants map[kernel.ID]restaurantRecord
	stagedOrders      map[kernel.ID]orderRecord
	stagedOffers      []*offer.Offer
}

// Begin locks the store for this transaction.
// Calling Begin twice on the same instance is an error in the caller.
func (u *UnitOfWork) Begin(_ context.Context) error {
	u.store.mu.Lock()
	u.began = true
	u.done = false
	u.stagedUsers = make(map[kernel.ID]userRecord)
	u.stagedRestaurants = make(map[kernel.ID]restaurantRecord)
	u.stagedOrders = make(map[kernel.ID]orderRecord)
	u.stagedOffers = nil
	return nil
}

// Commit folds every staged record into the store and releases the lock.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.began || u.done {
		return nil
	}

	for id, record := range u.stagedUsers {
		u.store.users[id] = record
	}
	for id, record := range u.stagedRestaurants {
		u.store.restaurants[id] = record
	}
	for id, record := range u.stagedOrders {
		u.store.orders[id] = record
	}
	for _, promo := range u.stagedOffers {
		if _, exists := u.store.offers[promo.Code()]; !exists {
			u.store.offerCodes = append(u.store.offerCodes, promo.Code())
		}
		u.store.offers[promo.Code()] = promo
	}

	u.done = true
	u.store.mu.Unlock()
	return nil
}

// Rollback discards staged records and releases the lock.
// A no-op after a successful Commit, so it is safe to defer.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.began || u.done {
		return nil
	}

	u.stagedUsers = nil
	u.stagedRestaurants = nil
	u.stagedOrders = nil
	u.stagedOffers = nil

	u.done = true
	u.store.mu.Unlock()
	return nil
}

// UserRepository returns a UserRepository bound to this transaction.
func (u *UnitOfWork) UserRepository() ports.UserRepository {
	return &userRepository{uow: u}
}

// RestaurantRepository returns a RestaurantRepository bound to this transaction.
func (u *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return &restaurantRepository{uow: u}
}

// OrderRepository returns an OrderRepository bound to this transaction.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: u}
}

// OfferRepository returns an OfferRepository bound to this transaction.
func (u *UnitOfWork) OfferRepository() ports.OfferRepository {
	return &offerRepository{uow: u}
}
