package main

import (
	"fmt"
	"log"
	"time"

	"github.com/parkerholladay/odyssey-voyage-II-server/models"
	"github.com/parkerholladay/odyssey-voyage-II-server/storage"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo universe: two hosts with listings across the amenity
// categories, two guests with funded wallets, and a handful of bookings and
// reviews so derived ratings have data.
func main() {
	db := storage.InitializeDB()

	password, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing seed password: %v", err)
	}

	users := []models.User{
		{Name: "Renata Okoye", Email: "renata@example.com", Password: string(password), Role: models.RoleHost, NicknameForGuests: "Captain Renata"},
		{Name: "Idris Vane", Email: "idris@example.com", Password: string(password), Role: models.RoleHost, NicknameForGuests: "Idris"},
		{Name: "Mira Chen", Email: "mira@example.com", Password: string(password), Role: models.RoleGuest},
		{Name: "Theo Laurent", Email: "theo@example.com", Password: string(password), Role: models.RoleGuest},
	}
	for i := range users {
		if err := db.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			log.Fatalf("Error seeding user %s: %v", users[i].Email, err)
		}
	}
	hostRenata, hostIdris, guestMira, guestTheo := users[0], users[1], users[2], users[3]

	wallets := []models.Wallet{
		{UserID: guestMira.ID, Amount: 5000},
		{UserID: guestTheo.ID, Amount: 1200},
		{UserID: hostRenata.ID, Amount: 0},
		{UserID: hostIdris.ID, Amount: 0},
	}
	for i := range wallets {
		if err := db.Where("user_id = ?", wallets[i].UserID).FirstOrCreate(&wallets[i]).Error; err != nil {
			log.Fatalf("Error seeding wallet: %v", err)
		}
	}

	amenities := []models.Amenity{
		{Category: models.AmenityCategoryAccommodationDetails, Name: "Interdimensional wifi"},
		{Category: models.AmenityCategoryAccommodationDetails, Name: "Towel"},
		{Category: models.AmenityCategoryAccommodationDetails, Name: "Universal remote"},
		{Category: models.AmenityCategorySpaceSurvival, Name: "Oxygen"},
		{Category: models.AmenityCategorySpaceSurvival, Name: "Prepackaged meals"},
		{Category: models.AmenityCategorySpaceSurvival, Name: "First-aid kit"},
		{Category: models.AmenityCategoryOutdoors, Name: "Meteor showers"},
		{Category: models.AmenityCategoryOutdoors, Name: "Zero-gravity yard"},
	}
	for i := range amenities {
		if err := db.Where("category = ? AND name = ?", amenities[i].Category, amenities[i].Name).
			FirstOrCreate(&amenities[i]).Error; err != nil {
			log.Fatalf("Error seeding amenity: %v", err)
		}
	}

	listings := []models.Listing{
		{
			HostID:       hostRenata.ID,
			Title:        "Cozy yurt on Mraza",
			Description:  "Hand-stitched yurt under a double sunset, minutes from the canyon trailheads.",
			NumOfBeds:    2,
			CostPerNight: 120,
			LocationType: "CAMPSITE",
			IsFeatured:   true,
			Amenities:    []models.Amenity{amenities[0], amenities[3], amenities[6]},
		},
		{
			HostID:       hostRenata.ID,
			Title:        "Repurposed mid-century orbiter",
			Description:  "A lovingly restored orbiter with panoramic viewports and a galley kitchen.",
			NumOfBeds:    4,
			CostPerNight: 340,
			LocationType: "SPACESHIP",
			IsFeatured:   true,
			Amenities:    []models.Amenity{amenities[1], amenities[3], amenities[4]},
		},
		{
			HostID:       hostIdris.ID,
			Title:        "Cave apartment in the lava district",
			Description:  "Naturally heated, surprisingly quiet, walkable to the night market.",
			NumOfBeds:    1,
			CostPerNight: 95,
			LocationType: "APARTMENT",
			IsFeatured:   true,
			Amenities:    []models.Amenity{amenities[2], amenities[5], amenities[7]},
		},
	}
	for i := range listings {
		if err := db.Where("host_id = ? AND title = ?", listings[i].HostID, listings[i].Title).
			FirstOrCreate(&listings[i]).Error; err != nil {
			log.Fatalf("Error seeding listing: %v", err)
		}
	}

	now := time.Now()
	bookings := []models.Booking{
		{
			ListingID:    listings[0].ID,
			GuestID:      guestMira.ID,
			CheckInDate:  now.AddDate(0, -2, 0),
			CheckOutDate: now.AddDate(0, -2, 4),
			TotalCost:    480,
		},
		{
			ListingID:    listings[2].ID,
			GuestID:      guestTheo.ID,
			CheckInDate:  now.AddDate(0, 1, 0),
			CheckOutDate: now.AddDate(0, 1, 3),
			TotalCost:    285,
		},
	}
	for i := range bookings {
		if err := db.Where("listing_id = ? AND guest_id = ? AND check_in_date = ?",
			bookings[i].ListingID, bookings[i].GuestID, bookings[i].CheckInDate).
			FirstOrCreate(&bookings[i]).Error; err != nil {
			log.Fatalf("Error seeding booking: %v", err)
		}
	}

	reviews := []models.Review{
		{
			BookingID:  bookings[0].ID,
			TargetType: models.ReviewTargetListing,
			TargetID:   listings[0].ID,
			AuthorID:   guestMira.ID,
			Rating:     5,
			Text:       "The canyon views alone are worth it.",
		},
		{
			BookingID:  bookings[0].ID,
			TargetType: models.ReviewTargetHost,
			TargetID:   hostRenata.ID,
			AuthorID:   guestMira.ID,
			Rating:     5,
			Text:       "Renata left the friendliest welcome note.",
		},
		{
			BookingID:  bookings[0].ID,
			TargetType: models.ReviewTargetGuest,
			TargetID:   guestMira.ID,
			AuthorID:   hostRenata.ID,
			Rating:     4,
			Text:       "Tidy guest, would host again.",
		},
	}
	for i := range reviews {
		if err := db.Where("booking_id = ? AND target_type = ?", reviews[i].BookingID, reviews[i].TargetType).
			FirstOrCreate(&reviews[i]).Error; err != nil {
			log.Fatalf("Error seeding review: %v", err)
		}
	}

	fmt.Println("Demo data seeded successfully!")
}
