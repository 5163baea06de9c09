package main

import (
	"context"
	"log"
	"time"

	"quickstay/internal/config"
	"quickstay/internal/database"
	"quickstay/internal/domain"
	jwtsvc "quickstay/internal/pkg/jwt"
	"quickstay/internal/repository"
)

// Seeds a local database with demo accounts, a hotel with rooms and one
// booking, and prints ready-to-use bearer tokens.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	for _, table := range []string{"bookings", "offers", "rooms", "hotels", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatal("Failed to wipe table ", table, ": ", err)
		}
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	hotels := repository.NewHotelRepository(db)
	rooms := repository.NewRoomRepository(db)
	bookings := repository.NewBookingRepository(db)

	guest := &domain.User{
		ID:       "user_guest_demo",
		Username: "Great Stack",
		Email:    "guest@example.com",
		Role:     domain.RoleUser,
	}
	owner := &domain.User{
		ID:       "user_owner_demo",
		Username: "Hotel Owner",
		Email:    "owner@example.com",
		Role:     domain.RoleHotelOwner,
	}
	for _, u := range []*domain.User{guest, owner} {
		if err := users.Upsert(ctx, u); err != nil {
			log.Fatal("Failed to seed user:", err)
		}
	}
	if err := users.UpdateRole(ctx, owner.ID, domain.RoleHotelOwner); err != nil {
		log.Fatal("Failed to set owner role:", err)
	}

	hotel := &domain.Hotel{
		OwnerID: owner.ID,
		Name:    "Urbanza Suites",
		Address: "Main Road 123 Street, 23 Colony",
		City:    "New York",
		Contact: "+0123456789",
	}
	if err := hotels.Create(ctx, hotel); err != nil {
		log.Fatal("Failed to seed hotel:", err)
	}

	seedRooms := []*domain.Room{
		{
			HotelID:       hotel.ID,
			RoomType:      domain.RoomDoubleBed,
			PricePerNight: 399,
			Amenities:     []string{"Free WiFi", "Free Breakfast", "Room Service"},
			Images:        []string{"/uploads/room1.jpg", "/uploads/room2.jpg"},
		},
		{
			HotelID:       hotel.ID,
			RoomType:      domain.RoomLuxury,
			PricePerNight: 299,
			Amenities:     []string{"Free WiFi", "Pool Access"},
			Images:        []string{"/uploads/room3.jpg"},
		},
		{
			HotelID:       hotel.ID,
			RoomType:      domain.RoomSingleBed,
			PricePerNight: 199,
			Amenities:     []string{"Free WiFi"},
			Images:        []string{"/uploads/room4.jpg"},
		},
	}
	for _, room := range seedRooms {
		if err := rooms.Create(ctx, room); err != nil {
			log.Fatal("Failed to seed room:", err)
		}
	}

	checkIn := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 14)
	booking := &domain.Booking{
		UserID:     guest.ID,
		RoomID:     seedRooms[0].ID,
		HotelID:    hotel.ID,
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 2),
		Guests:     2,
		TotalPrice: seedRooms[0].PricePerNight * 2,
	}
	if err := bookings.Create(ctx, booking); err != nil {
		log.Fatal("Failed to seed booking:", err)
	}

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	for _, u := range []*domain.User{guest, owner} {
		token, err := jwtService.GenerateToken(u.ID, u.Email)
		if err != nil {
			log.Fatal("Failed to mint token:", err)
		}
		log.Printf("%s (%s): Bearer %s", u.Username, u.Role, token)
	}

	log.Println("Seed complete")
}
