package memstore

import (
	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/menu"
	"foodmate/internal/core/domain/model/offer"
	"foodmate/internal/core/domain/model/restaurant"
	"foodmate/internal/core/domain/model/user"
)

// Seed populates the store with the demo marketplace: one account per role,
// two restaurants with stocked menus, and the two standing offers. Intended
// for local runs and demos; production deployments start empty.
func (s *Store) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	spiceGarden, err := seedRestaurant("Spice Garden", menu.CuisineIndian,
		"contact@spicegarden.test", []seedDish{
			{"Paneer Tikka", "12.50", menu.DietaryVeg, menu.CourseLunch},
			{"Chicken Biryani", "14.00", menu.DietaryNonVeg, menu.CourseDinner},
			{"Masala Dosa", "8.00", menu.DietaryVeg, menu.CourseBreakfast},
			{"Gulab Jamun", "4.50", menu.DietaryVeg, menu.CourseDessert},
		})
	if err != nil {
		return err
	}

	pizzaHub, err := seedRestaurant("Pizza Hub", menu.CuisineItalian,
		"contact@pizzahub.test", []seedDish{
			{"Margherita", "9.00", menu.DietaryVeg, menu.CourseDinner},
			{"Pepperoni", "11.50", menu.DietaryNonVeg, menu.CourseDinner},
			{"Tiramisu", "6.00", menu.DietaryVeg, menu.CourseDessert},
		})
	if err != nil {
		return err
	}

	alice, err := user.NewCustomer("Alice", "alice123", "101 Maple St")
	if err != nil {
		return err
	}

	chefBob, err := user.NewRestaurantOwner("ChefBob", "bob123")
	if err != nil {
		return err
	}
	if err = chefBob.AddRestaurant(spiceGarden.ID()); err != nil {
		return err
	}
	if err = chefBob.AddRestaurant(pizzaHub.ID()); err != nil {
		return err
	}

	dan, err := user.NewDeliveryPartner("Dan", "dan123", "Bike")
	if err != nil {
		return err
	}

	first30, err := offer.NewOffer("FIRST30", kernel.NewMoneyFromInt(30), false,
		kernel.NewMoneyFromInt(50), false)
	if err != nil {
		return err
	}

	loyalty50, err := offer.NewOffer("LOYALTY50", kernel.NewMoneyFromInt(50), true,
		kernel.NewMoneyFromInt(20), true)
	if err != nil {
		return err
	}

	for _, aggregate := range []*restaurant.Restaurant{spiceGarden, pizzaHub} {
		s.restaurants[aggregate.ID()] = restaurantFromDomain(aggregate)
	}

	for _, account := range []user.Account{alice, chefBob, dan} {
		record, recordErr := userFromDomain(account)
		if recordErr != nil {
			return recordErr
		}
		s.users[record.ID] = record
	}

	for _, promo := range []*offer.Offer{first30, loyalty50} {
		s.offers[promo.Code()] = promo
		s.offerCodes = append(s.offerCodes, promo.Code())
	}

	return nil
}

type seedDish struct {
	name    string
	price   string
	dietary menu.DietaryType
	course  menu.Course
}

func seedRestaurant(name string, cuisine menu.Cuisine, email string, dishes []seedDish) (*restaurant.Restaurant, error) {
	aggregate, err := restaurant.NewRestaurant(name, cuisine, email)
	if err != nil {
		return nil, err
	}

	for _, d := range dishes {
		price, priceErr := kernel.NewMoneyFromString(d.price)
		if priceErr != nil {
			return nil, priceErr
		}
		dish, dishErr := menu.NewDish(d.name, price, d.dietary, cuisine, d.course)
		if dishErr != nil {
			return nil, dishErr
		}
		if err = aggregate.Menu().AddDish(dish); err != nil {
			return nil, err
		}
	}
	return aggregate, nil
}
