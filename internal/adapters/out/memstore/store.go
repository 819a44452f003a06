// Package memstore provides the in-memory implementation of the Unit of Work
// pattern backing the FoodMate repositories.
//
// The store keeps aggregates as plain record structs, never as live domain
// pointers: repositories convert aggregates to records on write and rebuild
// them through the domain Restore constructors on read. Two transactions can
// therefore never observe each other's uncommitted state through a shared
// pointer.
//
// Transaction semantics: Begin takes the store's single mutex, repository
// writes stage records on the unit of work, Commit folds the staged records
// into the store and releases the mutex, Rollback discards them. The mutex
// serializes transactions, which is the point: every committed transaction
// observes the full effect of the previous one.
package memstore

import (
	"sort"
	"sync"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/offer"
)

// Store is the process-wide in-memory database.
// All access goes through a UnitOfWork created by the store's factory.
type Store struct {
	mu sync.Mutex

	users       map[kernel.ID]userRecord
	restaurants map[kernel.ID]restaurantRecord
	orders      map[kernel.ID]orderRecord

	// offers are immutable after creation, so the aggregate pointers are
	// shared directly instead of round-tripping through records.
	offers     map[string]*offer.Offer
	offerCodes []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:       make(map[kernel.ID]userRecord),
		restaurants: make(map[kernel.ID]restaurantRecord),
		orders:      make(map[kernel.ID]orderRecord),
		offers:      make(map[string]*offer.Offer),
	}
}

// sortedIDs returns the keys of an ID-keyed map in ascending ID order, so
// listings are deterministic across calls.
func sortedIDs[V any](m map[kernel.ID]V) []kernel.ID {
	ids := make([]kernel.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}
