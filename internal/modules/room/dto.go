package room

type CreateRoomRequest struct {
	RoomType      string   `json:"room_type" binding:"required"`
	PricePerNight float64  `json:"price_per_night" binding:"required" validate:"gt=0"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

type ToggleAvailabilityRequest struct {
	RoomID int64 `json:"room_id" binding:"required"`
}

type RateRoomRequest struct {
	RoomID int64 `json:"room_id" binding:"required"`
	Rating int   `json:"rating" binding:"required"`
}
