package memstore

import (
	"context"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/pkg/errs"
)

// userRepository implements ports.UserRepository over the staged store.
type userRepository struct {
	uow *UnitOfWork
}

func (r *userRepository) Add(_ context.Context, account user.Account) error {
	record, err := userFromDomain(account)
	if err != nil {
		return err
	}
	r.uow.stagedUsers[record.ID] = record
	return nil
}

func (r *userRepository) Update(_ context.Context, account user.Account) error {
	record, err := userFromDomain(account)
	if err != nil {
		return err
	}
	if !r.exists(record.ID) {
		return errs.NewObjectNotFoundError("user", record.ID)
	}
	r.uow.stagedUsers[record.ID] = record
	return nil
}

func (r *userRepository) Get(_ context.Context, id kernel.ID) (user.Account, error) {
	record, ok := r.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id)
	}
	return userToDomain(record)
}

func (r *userRepository) GetByName(_ context.Context, name string) (user.Account, error) {
	for _, record := range r.uow.stagedUsers {
		if record.Name == name {
			return userToDomain(record)
		}
	}
	for id, record := range r.uow.store.users {
		if _, staged := r.uow.stagedUsers[id]; staged {
			continue
		}
		if record.Name == name {
			return userToDomain(record)
		}
	}
	return nil, errs.NewObjectNotFoundError("user", name)
}

func (r *userRepository) GetAllPartners(_ context.Context) ([]*user.DeliveryPartner, error) {
	merged := r.merged()
	partners := make([]*user.DeliveryPartner, 0)
	for _, id := range sortedIDs(merged) {
		record := merged[id]
		if record.Role != user.RoleDeliveryPartner {
			continue
		}
		account, err := userToDomain(record)
		if err != nil {
			return nil, err
		}
		partners = append(partners, account.(*user.DeliveryPartner))
	}
	return partners, nil
}

func (r *userRepository) lookup(id kernel.ID) (userRecord, bool) {
	if record, ok := r.uow.stagedUsers[id]; ok {
		return record, true
	}
	record, ok := r.uow.store.users[id]
	return record, ok
}

func (r *userRepository) exists(id kernel.ID) bool {
	_, ok := r.lookup(id)
	return ok
}

func (r *userRepository) merged() map[kernel.ID]userRecord {
	merged := make(map[kernel.ID]userRecord, len(r.uow.store.users))
	for id, record := range r.uow.store.users {
		merged[id] = record
	}
	for id, record := range r.uow.stagedUsers {
		merged[id] = record
	}
	return merged
}
