package queries

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/guard"
)

var ErrGetUserProfileQueryIsNotConstructed = errors.New(
	"GetUserProfileQuery must be created via NewGetUserProfileQuery constructor",
)

// GetUserProfileQuery retrieves one account's profile summary.
type GetUserProfileQuery struct { //nolint:recvcheck //using for validation
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetUserProfileQuery creates a query to fetch a profile by account ID.
func NewGetUserProfileQuery(userID kernel.ID) (GetUserProfileQuery, error) {
	q := GetUserProfileQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setUserID(userID); err != nil {
		return GetUserProfileQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetUserProfileQueryIsNotConstructed)
}

// UserID returns the queried account's ID.
func (q GetUserProfileQuery) UserID() kernel.ID {
	return q.userID
}

func (q *GetUserProfileQuery) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	q.userID = userID
	return nil
}

// UserProfileResponse represents an account profile in the read model.
// The role-specific details (loyalty balance, earnings, owned restaurants)
// come rendered in the profile text; OrderHistory is filled for customers.
type UserProfileResponse struct {
	ID           kernel.ID
	Name         string
	Role         string
	Profile      string
	OrderHistory []kernel.ID
}
