package offer

type CreateOfferRequest struct {
	RoomID             int64   `json:"room_id" binding:"required"`
	Title              string  `json:"title" binding:"required" validate:"required,max=120"`
	Description        string  `json:"description"`
	DiscountPercentage float64 `json:"discount_percentage" binding:"required" validate:"gt=0,lte=100"`
	StartDate          string  `json:"start_date" binding:"required"`
	EndDate            string  `json:"end_date" binding:"required"`
}

type UpdateOfferRequest struct {
	Title              *string  `json:"title"`
	Description        *string  `json:"description"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	StartDate          *string  `json:"start_date"`
	EndDate            *string  `json:"end_date"`
	IsActive           *bool    `json:"is_active"`
}
