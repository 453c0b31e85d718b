package services

import "carbooking/internal/models"

// DefaultFleet returns a fresh copy of the demo inventory used by
// POST /api/cars/seed.
func DefaultFleet() []*models.Car {
	transfer := func(name, class string, price float64, passengers, medium, small int, rating float64, image string) *models.Car {
		return &models.Car{
			CarType:            models.CarTypeTransfer,
			Name:               name,
			Type:               class,
			Image:              image,
			Price:              price,
			Currency:           models.DefaultCurrency,
			IsActive:           true,
			Passengers:         passengers,
			MediumLuggage:      medium,
			SmallLuggage:       small,
			Rating:             rating,
			CancellationPolicy: "Free cancellation up to 24 hours after booking",
			Description:        class + " transfer with a professional driver",
		}
	}
	rental := func(name, category string, pricePerDay float64, seats, bags int, tr models.Transmission, fuel models.FuelType, image string, features ...string) *models.Car {
		return &models.Car{
			CarType:        models.CarTypeRental,
			Name:           name,
			Type:           category,
			Image:          image,
			Price:          pricePerDay,
			Currency:       models.DefaultCurrency,
			IsActive:       true,
			Category:       category,
			Seats:          seats,
			Bags:           bags,
			Transmission:   tr,
			PricePerDay:    pricePerDay,
			FuelType:       fuel,
			PickupLocation: "Airport Terminal 1",
			Features:       features,
			Description:    category + " rental, unlimited mileage",
		}
	}

	return []*models.Car{
		transfer("Skoda Octavia", "Standard", 45, 3, 2, 2, 4.6, "/images/cars/skoda-octavia.jpg"),
		transfer("Mercedes E-Class", "Business", 75, 3, 2, 2, 4.8, "/images/cars/mercedes-e-class.jpg"),
		transfer("Mercedes S-Class", "First Class", 120, 3, 2, 2, 4.9, "/images/cars/mercedes-s-class.jpg"),
		transfer("Mercedes V-Class", "Van", 95, 7, 6, 4, 4.7, "/images/cars/mercedes-v-class.jpg"),
		transfer("Tesla Model S", "Electric", 85, 3, 2, 2, 4.8, "/images/cars/tesla-model-s.jpg"),
		rental("Volkswagen Polo", "Economy", 29, 5, 1, models.TransmissionManual, models.FuelTypePetrol,
			"/images/cars/vw-polo.jpg", "Air conditioning", "Bluetooth"),
		rental("Toyota Corolla Hybrid", "Compact", 39, 5, 2, models.TransmissionAutomatic, models.FuelTypeHybrid,
			"/images/cars/toyota-corolla.jpg", "Air conditioning", "Bluetooth", "Cruise control"),
		rental("BMW 3 Series", "Premium", 69, 5, 3, models.TransmissionAutomatic, models.FuelTypeDiesel,
			"/images/cars/bmw-3-series.jpg", "Navigation", "Leather seats", "Parking sensors"),
		rental("Volkswagen ID.4", "SUV", 64, 5, 3, models.TransmissionAutomatic, models.FuelTypeElectric,
			"/images/cars/vw-id4.jpg", "Navigation", "Heated seats", "Fast charging"),
		rental("Ford Transit Custom", "Van", 89, 9, 5, models.TransmissionManual, models.FuelTypeDiesel,
			"/images/cars/ford-transit.jpg", "Air conditioning", "Rear camera"),
	}
}
