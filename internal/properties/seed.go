package properties

import "github.com/dmitrijs2005/rentalconnect/internal/models"

// seedProperties returns the fixed fallback listings shown before any
// collection has been persisted. Fresh copies on every call.
func seedProperties() []*models.Property {
	return []*models.Property{
		{
			ID:        1,
			Title:     "Modern Downtown Apartment",
			Price:     1800,
			Address:   "123 Main St, Downtown",
			Type:      "Apartment",
			Beds:      models.Beds{Count: 2},
			Baths:     1,
			Sqft:      950,
			Amenities: []string{"Parking", "Gym", "AC"},
			Image:     "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?auto=format&fit=crop&w=600",
			OwnerID:   2,
		},
		{
			ID:        2,
			Title:     "Cozy Suburban House",
			Price:     2200,
			Address:   "456 Oak Ave, Suburbia",
			Type:      "House",
			Beds:      models.Beds{Count: 3},
			Baths:     2,
			Sqft:      1500,
			Amenities: []string{"Pet Friendly", "Garden", "Garage"},
			Image:     "https://images.unsplash.com/photo-1518780664697-55e3ad937233?auto=format&fit=crop&w=600",
			OwnerID:   2,
		},
		{
			ID:        3,
			Title:     "Studio Near University",
			Price:     950,
			Address:   "789 College Blvd",
			Type:      "Studio",
			Beds:      models.Beds{Studio: true},
			Baths:     1,
			Sqft:      550,
			Amenities: []string{"Furnished", "Wi-Fi", "Laundry"},
			Image:     "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?auto=format&fit=crop&w=600",
		},
		{
			ID:        4,
			Title:     "Luxury Villa with Pool",
			Price:     4500,
			Address:   "101 Beachfront Rd",
			Type:      "Villa",
			Beds:      models.Beds{Count: 4},
			Baths:     3,
			Sqft:      2800,
			Amenities: []string{"Pool", "AC", "Parking", "Gym"},
			Image:     "https://images.unsplash.com/photo-1613977257363-707ba9348227?auto=format&fit=crop&w=600",
		},
	}
}
