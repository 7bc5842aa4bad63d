package users

import "github.com/dmitrijs2005/rentalconnect/internal/models"

// seedUsers returns the demo accounts shipped with the site. They act as
// the fallback collection until the first mutation persists a real one.
// Fresh copies are returned so callers can mutate freely.
func seedUsers() []*models.User {
	return []*models.User{
		{
			ID:        1,
			FirstName: "John",
			LastName:  "Renter",
			Email:     "renter@example.com",
			Password:  "password123",
			Phone:     "(555) 123-4567",
			UserType:  models.UserTypeRenter,
			Joined:    "2023-01-15",
			Favorites: []int{1, 3},
		},
		{
			ID:         2,
			FirstName:  "Sarah",
			LastName:   "Owner",
			Email:      "owner@example.com",
			Password:   "password123",
			Phone:      "(555) 987-6543",
			UserType:   models.UserTypeOwner,
			Joined:     "2023-02-20",
			Properties: []int{1, 2},
		},
	}
}
