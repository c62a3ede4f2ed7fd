package catalog

import (
	"github.com/young4chick/kukuhub/internal/state"
)

var defaultCategories = []Category{
	{ID: "local", Name: "Local Chicks", Icon: "🐤"},
	{ID: "layers", Name: "Layers", Icon: "🐔"},
	{ID: "broilers", Name: "Broilers", Icon: "🍗"},
}

var defaultProducts = []state.Product{
	{
		ID:          "1",
		Name:        "Biyinzika Poultry",
		Description: "At Biyinzika we have the best breeds for layers and we have different types.",
		Price:       4000,
		PriceUnit:   "1 day old",
		Category:    "layers",
		Rating:      4.8,
		Image:       "🐔",
	},
	{
		ID:          "2",
		Name:        "Kuroiler Chicks",
		Description: "Local chickens are hardy birds specifically raised for meat production.",
		Price:       3500,
		PriceUnit:   "1 day old",
		Category:    "local",
		Rating:      4.5,
		Image:       "🐤",
	},
	{
		ID:          "3",
		Name:        "Ross 308 Broilers",
		Description: "Orders are hybrid chickens developed for meat production.",
		Price:       5000,
		PriceUnit:   "1 day old",
		Category:    "broilers",
		Rating:      4.9,
		Image:       "🍗",
	},
	{
		ID:          "4",
		Name:        "Isa Brown Layers",
		Description: "High-yield egg production breeds with excellent feed conversion.",
		Price:       4500,
		PriceUnit:   "1 day old",
		Category:    "layers",
		Rating:      4.7,
		Image:       "🐔",
	},
}

var defaultServices = []Service{
	{
		ID:          "1",
		Name:        "Vaccination Services",
		Description: "Professional poultry vaccination by certified veterinarians",
		Price:       "From UGX 5,000",
		Icon:        "medical",
		Rating:      4.9,
		Reviews:     234,
	},
	{
		ID:          "2",
		Name:        "Feed Delivery",
		Description: "Quality poultry feed delivered to your doorstep",
		Price:       "From UGX 50,000",
		Icon:        "cube",
		Rating:      4.7,
		Reviews:     189,
	},
	{
		ID:          "3",
		Name:        "Veterinary Consultation",
		Description: "Expert advice on poultry health and management",
		Price:       "UGX 20,000/session",
		Icon:        "chatbubbles",
		Rating:      4.8,
		Reviews:     156,
	},
	{
		ID:          "4",
		Name:        "Farm Setup Assistance",
		Description: "Complete guidance for setting up your poultry farm",
		Price:       "From UGX 100,000",
		Icon:        "construct",
		Rating:      4.6,
		Reviews:     87,
	},
	{
		ID:          "5",
		Name:        "Equipment Rental",
		Description: "Rent incubators, brooders, and other equipment",
		Price:       "From UGX 30,000/day",
		Icon:        "hardware-chip",
		Rating:      4.5,
		Reviews:     112,
	},
	{
		ID:          "6",
		Name:        "Training & Workshops",
		Description: "Learn modern poultry farming techniques",
		Price:       "UGX 50,000/session",
		Icon:        "school",
		Rating:      4.9,
		Reviews:     298,
	},
}
