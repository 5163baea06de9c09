package domain

import "time"

// Offer is a promotional discount on a room for a date window.
type Offer struct {
	ID                 int64     `json:"id"`
	HotelID            int64     `json:"hotel_id"`
	RoomID             int64     `json:"room_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	DiscountPercentage float64   `json:"discount_percentage"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Hotel *Hotel `json:"hotel,omitempty"`
	Room  *Room  `json:"room,omitempty"`
}
