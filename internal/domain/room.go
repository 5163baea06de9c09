package domain

import (
	"errors"
	"time"
)

type RoomType string

const (
	RoomSingleBed   RoomType = "Single Bed"
	RoomDoubleBed   RoomType = "Double Bed"
	RoomLuxury      RoomType = "Luxury Room"
	RoomFamilySuite RoomType = "Family Suite"
)

var ErrUnknownRoomType = errors.New("unknown room type")

func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomSingleBed, RoomDoubleBed, RoomLuxury, RoomFamilySuite:
		return RoomType(s), nil
	}
	return "", ErrUnknownRoomType
}

// Rating is one user's score for a room. A room holds at most one entry
// per user; re-rating replaces the previous entry.
type Rating struct {
	UserID string `json:"user_id"`
	Value  int    `json:"value"`
}

type Room struct {
	ID            int64     `json:"id"`
	HotelID       int64     `json:"hotel_id"`
	RoomType      RoomType  `json:"room_type"`
	PricePerNight float64   `json:"price_per_night"`
	Amenities     []string  `json:"amenities,omitempty"`
	Images        []string  `json:"images,omitempty"`
	IsAvailable   bool      `json:"is_available"`
	Ratings       []Rating  `json:"ratings,omitempty"`
	AverageRating float64   `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Hotel *Hotel `json:"hotel,omitempty"`
}
