package memstore

import (
	"time"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/menu"
	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/core/domain/model/restaurant"
	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/pkg/errs"
)

// userRecord persists any of the three account variants; the role
// discriminates which of the variant fields are meaningful.
type userRecord struct {
	ID       kernel.ID
	Name     string
	Password string
	Role     user.Role

	// customer
	DeliveryAddress string
	LoyaltyPoints   kernel.Money
	OrderHistory    []kernel.ID

	// restaurant owner
	RestaurantIDs []kernel.ID

	// delivery partner
	VehicleType string
	Earnings    kernel.Money
	Rating      kernel.RunningAverage
	Available   bool
}

func userFromDomain(account user.Account) (userRecord, error) {
	switch a := account.(type) {
	case *user.Customer:
		return userRecord{
			ID:              a.ID(),
			Name:            a.Name(),
			Password:        a.Password(),
			Role:            user.RoleCustomer,
			DeliveryAddress: a.DeliveryAddress(),
			LoyaltyPoints:   a.LoyaltyPoints(),
			OrderHistory:    append([]kernel.ID(nil), a.OrderHistory()...),
		}, nil
	case *user.RestaurantOwner:
		return userRecord{
			ID:            a.ID(),
			Name:          a.Name(),
			Password:      a.Password(),
			Role:          user.RoleRestaurantOwner,
			RestaurantIDs: append([]kernel.ID(nil), a.RestaurantIDs()...),
		}, nil
	case *user.DeliveryPartner:
		return userRecord{
			ID:          a.ID(),
			Name:        a.Name(),
			Password:    a.Password(),
			Role:        user.RoleDeliveryPartner,
			VehicleType: a.VehicleType(),
			Earnings:    a.Earnings(),
			Rating:      a.Rating(),
			Available:   a.IsAvailable(),
		}, nil
	default:
		return userRecord{}, errs.NewValueIsInvalidError("account type")
	}
}

func userToDomain(record userRecord) (user.Account, error) {
	switch record.Role {
	case user.RoleCustomer:
		return user.RestoreCustomer(record.ID, record.Name, record.Password,
			record.DeliveryAddress, record.LoyaltyPoints,
			append([]kernel.ID(nil), record.OrderHistory...))
	case user.RoleRestaurantOwner:
		return user.RestoreRestaurantOwner(record.ID, record.Name, record.Password,
			append([]kernel.ID(nil), record.RestaurantIDs...))
	case user.RoleDeliveryPartner:
		return user.RestoreDeliveryPartner(record.ID, record.Name, record.Password,
			record.VehicleType, record.Earnings, record.Rating, record.Available)
	default:
		return nil, errs.NewValueIsInvalidError("account role")
	}
}

type dishRecord struct {
	ID      kernel.ID
	Name    string
	Price   kernel.Money
	Dietary menu.DietaryType
	Cuisine menu.Cuisine
	Course  menu.Course
	Rating  kernel.RunningAverage
}

type restaurantRecord struct {
	ID           kernel.ID
	Name         string
	Cuisine      menu.Cuisine
	ContactEmail string
	Dishes       []dishRecord
	Rating       kernel.RunningAverage
}

func restaurantFromDomain(aggregate *restaurant.Restaurant) restaurantRecord {
	dishes := aggregate.Menu().Dishes()
	dishRecords := make([]dishRecord, 0, len(dishes))
	for _, dish := range dishes {
		dishRecords = append(dishRecords, dishRecord{
			ID:      dish.ID(),
			Name:    dish.Name(),
			Price:   dish.Price(),
			Dietary: dish.Dietary(),
			Cuisine: dish.Cuisine(),
			Course:  dish.Course(),
			Rating:  dish.Rating(),
		})
	}

	return restaurantRecord{
		ID:           aggregate.ID(),
		Name:         aggregate.Name(),
		Cuisine:      aggregate.Cuisine(),
		ContactEmail: aggregate.ContactEmail(),
		Dishes:       dishRecords,
		Rating:       aggregate.Rating(),
	}
}

func restaurantToDomain(record restaurantRecord) (*restaurant.Restaurant, error) {
	dishes := make([]*menu.Dish, 0, len(record.Dishes))
	for _, d := range record.Dishes {
		dish, err := menu.RestoreDish(d.ID, d.Name, d.Price, d.Dietary, d.Cuisine, d.Course, d.Rating)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}

	restored, err := menu.RestoreMenu(dishes)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(record.ID, record.Name, record.Cuisine,
		record.ContactEmail, restored, record.Rating)
}

type lineRecord struct {
	DishID    kernel.ID
	DishName  string
	UnitPrice kernel.Money
	Quantity  int
}

type messageRecord struct {
	Sender string
	Text   string
	SentAt time.Time
}

type orderRecord struct {
	ID              kernel.ID
	CustomerID      kernel.ID
	RestaurantID    kernel.ID
	DeliveryAddress string
	Lines           []lineRecord
	OfferCode       string
	Discount        kernel.Money
	Tip             kernel.Money
	PartnerID       kernel.ID
	Status          order.Status
	Placed          bool
	Rated           bool
	Messages        []messageRecord
}

func orderFromDomain(aggregate *order.Order) orderRecord {
	lines := aggregate.Lines()
	lineRecords := make([]lineRecord, 0, len(lines))
	for _, line := range lines {
		lineRecords = append(lineRecords, lineRecord{
			DishID:    line.DishID(),
			DishName:  line.DishName(),
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity(),
		})
	}

	messages := aggregate.Messages()
	messageRecords := make([]messageRecord, 0, len(messages))
	for _, m := range messages {
		messageRecords = append(messageRecords, messageRecord{
			Sender: m.Sender(),
			Text:   m.Text(),
			SentAt: m.SentAt(),
		})
	}

	return orderRecord{
		ID:              aggregate.ID(),
		CustomerID:      aggregate.CustomerID(),
		RestaurantID:    aggregate.RestaurantID(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Lines:           lineRecords,
		OfferCode:       aggregate.OfferCode(),
		Discount:        aggregate.Discount(),
		Tip:             aggregate.Tip(),
		PartnerID:       aggregate.PartnerID(),
		Status:          aggregate.Status(),
		Placed:          aggregate.IsPlaced(),
		Rated:           aggregate.IsRated(),
		Messages:        messageRecords,
	}
}

func orderToDomain(record orderRecord) (*order.Order, error) {
	lines := make([]order.Line, 0, len(record.Lines))
	for _, l := range record.Lines {
		line, err := order.NewLine(l.DishID, l.DishName, l.UnitPrice, l.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	messages := make([]order.Message, 0, len(record.Messages))
	for _, m := range record.Messages {
		message, err := order.RestoreMessage(m.Sender, m.Text, m.SentAt)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return order.RestoreOrder(record.ID, record.CustomerID, record.RestaurantID,
		record.DeliveryAddress, lines, record.OfferCode, record.Discount, record.Tip,
		record.PartnerID, record.Status, record.Placed, record.Rated, messages)
}
