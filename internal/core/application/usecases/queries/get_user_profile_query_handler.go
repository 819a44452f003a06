package queries

import (
	"context"

	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/core/ports"
)

// GetUserProfileQueryHandler retrieves an account profile as a read model.
type GetUserProfileQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetUserProfileQueryHandler creates a handler for profile lookups.
func NewGetUserProfileQueryHandler(uowFactory ports.UnitOfWorkFactory) GetUserProfileQueryHandler {
	return GetUserProfileQueryHandler{uowFactory: uowFactory}
}

// Handle executes the profile lookup. An unknown ID is a not-found error.
func (h GetUserProfileQueryHandler) Handle(ctx context.Context, query GetUserProfileQuery) (UserProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return UserProfileResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UserProfileResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().Get(ctx, query.UserID())
	if err != nil {
		return UserProfileResponse{}, err
	}

	response := UserProfileResponse{
		ID:      account.ID(),
		Name:    account.Name(),
		Role:    account.Role().String(),
		Profile: account.DescribeProfile(),
	}
	if customer, ok := account.(*user.Customer); ok {
		response.OrderHistory = customer.OrderHistory()
	}
	return response, nil
}
