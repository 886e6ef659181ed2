package catalog

import "ticketbharat/models"

// Ticket tier names used by the fixture. Tiers are an open set; nothing
// outside this file assumes any particular pair.
const (
	TierRegular = "regular"
	TierPremium = "premium"
)

var stateOrder = []string{
	"Delhi", "Maharashtra", "Karnataka", "Tamil Nadu", "Telangana",
	"West Bengal", "Gujarat", "Rajasthan", "Uttar Pradesh", "Punjab",
}

var stateCities = map[string][]string{
	"Delhi":         {"New Delhi", "Gurgaon", "Noida"},
	"Maharashtra":   {"Mumbai", "Pune", "Nagpur"},
	"Karnataka":     {"Bangalore", "Mysore", "Mangalore"},
	"Tamil Nadu":    {"Chennai", "Coimbatore", "Madurai"},
	"Telangana":     {"Hyderabad", "Warangal"},
	"West Bengal":   {"Kolkata", "Durgapur"},
	"Gujarat":       {"Ahmedabad", "Surat", "Vadodara"},
	"Rajasthan":     {"Jaipur", "Udaipur", "Jodhpur"},
	"Uttar Pradesh": {"Lucknow", "Kanpur", "Agra"},
	"Punjab":        {"Chandigarh", "Ludhiana", "Amritsar"},
}

var events = []models.Event{
	{
		ID:          "movie-1",
		Name:        "Pushpa 2: The Rule",
		Category:    models.CategoryMovie,
		Venue:       "PVR Cinemas",
		City:        "Mumbai",
		State:       "Maharashtra",
		Dates:       []string{"2025-09-06", "2025-09-07", "2025-09-08"},
		Times:       []string{"10:00 AM", "1:00 PM", "4:00 PM", "7:00 PM", "10:00 PM"},
		Prices:      map[string]float64{TierRegular: 200, TierPremium: 350},
		Description: "The much-awaited sequel to the blockbuster Pushpa",
	},
	{
		ID:          "movie-2",
		Name:        "Kalki 2898 AD",
		Category:    models.CategoryMovie,
		Venue:       "INOX",
		City:        "Bangalore",
		State:       "Karnataka",
		Dates:       []string{"2025-09-06", "2025-09-07", "2025-09-08"},
		Times:       []string{"11:00 AM", "2:00 PM", "5:00 PM", "8:00 PM"},
		Prices:      map[string]float64{TierRegular: 180, TierPremium: 300},
		Description: "Futuristic sci-fi epic starring Prabhas",
	},
	{
		ID:          "concert-1",
		Name:        "A.R. Rahman Live",
		Category:    models.CategoryConcert,
		Venue:       "Jawaharlal Nehru Stadium",
		City:        "New Delhi",
		State:       "Delhi",
		Dates:       []string{"2025-09-15", "2025-09-16"},
		Times:       []string{"7:00 PM"},
		Prices:      map[string]float64{TierRegular: 2500, TierPremium: 5000},
		Description: "Oscar-winning composer performs his greatest hits",
	},
	{
		ID:          "concert-2",
		Name:        "Arijit Singh Live Concert",
		Category:    models.CategoryConcert,
		Venue:       "MMRDA Grounds",
		City:        "Mumbai",
		State:       "Maharashtra",
		Dates:       []string{"2025-09-20"},
		Times:       []string{"8:00 PM"},
		Prices:      map[string]float64{TierRegular: 1500, TierPremium: 3500},
		Description: "Bollywood's melody king live in concert",
	},
	{
		ID:          "sports-1",
		Name:        "India vs Australia Cricket",
		Category:    models.CategorySports,
		Venue:       "M. Chinnaswamy Stadium",
		City:        "Bangalore",
		State:       "Karnataka",
		Dates:       []string{"2025-09-25"},
		Times:       []string{"2:00 PM"},
		Prices:      map[string]float64{TierRegular: 800, TierPremium: 2000},
		Description: "T20 International match",
	},
	{
		ID:          "sports-2",
		Name:        "Bengaluru FC vs Mumbai City FC",
		Category:    models.CategorySports,
		Venue:       "Sree Kanteerava Stadium",
		City:        "Bangalore",
		State:       "Karnataka",
		Dates:       []string{"2025-09-12"},
		Times:       []string{"7:30 PM"},
		Prices:      map[string]float64{TierRegular: 300, TierPremium: 800},
		Description: "ISL Football League match",
	},
	{
		ID:          "theater-1",
		Name:        "Mughal-E-Azam (The Musical)",
		Category:    models.CategoryTheater,
		Venue:       "National Centre for Performing Arts",
		City:        "Mumbai",
		State:       "Maharashtra",
		Dates:       []string{"2025-09-10", "2025-09-11", "2025-09-12"},
		Times:       []string{"8:00 PM"},
		Prices:      map[string]float64{TierRegular: 1200, TierPremium: 2500},
		Description: "Grand musical adaptation of the classic film",
	},
	{
		ID:          "theater-2",
		Name:        "Andha Yug",
		Category:    models.CategoryTheater,
		Venue:       "India Habitat Centre",
		City:        "New Delhi",
		State:       "Delhi",
		Dates:       []string{"2025-09-14", "2025-09-15"},
		Times:       []string{"7:00 PM"},
		Prices:      map[string]float64{TierRegular: 500, TierPremium: 1000},
		Description: "Classic Hindi drama by Dharamvir Bharati",
	},
	{
		ID:          "comedy-1",
		Name:        "Zakir Khan Live",
		Category:    models.CategoryComedy,
		Venue:       "Phoenix MarketCity",
		City:        "Chennai",
		State:       "Tamil Nadu",
		Dates:       []string{"2025-09-18"},
		Times:       []string{"8:00 PM"},
		Prices:      map[string]float64{TierRegular: 800, TierPremium: 1500},
		Description: "Stand-up comedy by Zakir Khan",
	},
}
