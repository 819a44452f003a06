package memstore

import (
	"context"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/restaurant"
	"foodmate/internal/pkg/errs"
)

// restaurantRepository implements ports.RestaurantRepository over the
// staged store.
type restaurantRepository struct {
	uow *UnitOfWork
}

func (r *restaurantRepository) Add(_ context.Context, aggregate *restaurant.Restaurant) error {
	r.uow.stagedRestaurants[aggregate.ID()] = restaurantFromDomain(aggregate)
	return nil
}

func (r *restaurantRepository) Update(_ context.Context, aggregate *restaurant.Restaurant) error {
	if _, ok := r.lookup(aggregate.ID()); !ok {
		return errs.NewObjectNotFoundError("restaurant", aggregate.ID())
	}
	r.uow.stagedRestaurants[aggregate.ID()] = restaurantFromDomain(aggregate)
	return nil
}

func (r *restaurantRepository) Get(_ context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	record, ok := r.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("restaurant", id)
	}
	return restaurantToDomain(record)
}

func (r *restaurantRepository) GetAll(_ context.Context) ([]*restaurant.Restaurant, error) {
	merged := make(map[kernel.ID]restaurantRecord, len(r.uow.store.restaurants))
	for id, record := range r.uow.store.restaurants {
		merged[id] = record
	}
	for id, record := range r.uow.stagedRestaurants {
		merged[id] = record
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(merged))
	for _, id := range sortedIDs(merged) {
		aggregate, err := restaurantToDomain(merged[id])
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, aggregate)
	}
	return restaurants, nil
}

func (r *restaurantRepository) lookup(id kernel.ID) (restaurantRecord, bool) {
	if record, ok := r.uow.stagedRestaurants[id]; ok {
		return record, true
	}
	record, ok := r.uow.store.restaurants[id]
	return record, ok
}
