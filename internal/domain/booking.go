package domain

import "time"

// Booking reserves one room for the half-open date range
// [CheckIn, CheckOut). HotelID is denormalized from the room at creation
// time. A booking is immutable except for the Paid flag, which the external
// payment collaborator flips.
type Booking struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	RoomID     int64     `json:"room_id"`
	HotelID    int64     `json:"hotel_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Guests     int       `json:"guests"`
	TotalPrice float64   `json:"total_price"`
	Paid       bool      `json:"paid"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Room  *Room  `json:"room,omitempty"`
	Hotel *Hotel `json:"hotel,omitempty"`
}
