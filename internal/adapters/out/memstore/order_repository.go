package memstore

import (
	"context"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/pkg/errs"
)

// orderRepository implements ports.OrderRepository over the staged store.
type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	r.uow.stagedOrders[aggregate.ID()] = orderFromDomain(aggregate)
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if _, ok := r.lookup(aggregate.ID()); !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	r.uow.stagedOrders[aggregate.ID()] = orderFromDomain(aggregate)
	return nil
}

func (r *orderRepository) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	record, ok := r.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return orderToDomain(record)
}

// GetAllActive lists orders in a non-terminal status, ID ascending.
func (r *orderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	return r.filter(func(record orderRecord) bool {
		return record.Status.IsActive()
	})
}

// GetAllUnassigned lists placed orders waiting for a delivery partner,
// ID ascending.
func (r *orderRepository) GetAllUnassigned(ctx context.Context) ([]*order.Order, error) {
	return r.filter(func(record orderRecord) bool {
		return record.Placed && record.Status.IsActive() && record.PartnerID.IsZero()
	})
}

// GetAllForCustomer lists every order of one customer, ID ascending.
func (r *orderRepository) GetAllForCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error) {
	return r.filter(func(record orderRecord) bool {
		return record.CustomerID.IsEqual(customerID)
	})
}

func (r *orderRepository) filter(keep func(orderRecord) bool) ([]*order.Order, error) {
	merged := make(map[kernel.ID]orderRecord, len(r.uow.store.orders))
	for id, record := range r.uow.store.orders {
		merged[id] = record
	}
	for id, record := range r.uow.stagedOrders {
		merged[id] = record
	}

	orders := make([]*order.Order, 0)
	for _, id := range sortedIDs(merged) {
		record := merged[id]
		if !keep(record) {
			continue
		}
		aggregate, err := orderToDomain(record)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

func (r *orderRepository) lookup(id kernel.ID) (orderRecord, bool) {
	if record, ok := r.uow.stagedOrders[id]; ok {
		return record, true
	}
	record, ok := r.uow.store.orders[id]
	return record, ok
}
