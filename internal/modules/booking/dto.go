package booking

import "quickstay/internal/domain"

type CheckAvailabilityRequest struct {
	RoomID       int64  `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	Guests       int    `json:"guests"`
}

type CreateBookingRequest struct {
	RoomID       int64  `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	Guests       int    `json:"guests" binding:"required"`
}

// PaymentWebhookRequest is the payment processor's callback payload.
type PaymentWebhookRequest struct {
	BookingID int64   `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Signature string  `json:"signature" binding:"required"`
}

// Dashboard aggregates a hotel's committed bookings for the owner view.
type Dashboard struct {
	Bookings      []domain.Booking `json:"bookings"`
	TotalBookings int              `json:"total_bookings"`
	TotalRevenue  float64          `json:"total_revenue"`
}
