// Package notification delivers the booking confirmation email. Delivery is
// best effort: the booking service dispatches after the booking is committed
// and logs failures without surfacing them.
package notification

import (
	"context"
	"log"
	"time"
)

type BookingConfirmation struct {
	BookingID      int64
	RecipientEmail string
	RecipientName  string
	HotelName      string
	HotelAddress   string
	CheckIn        time.Time
	TotalPrice     float64
	Currency       string
}

type Sender interface {
	SendBookingConfirmation(ctx context.Context, msg BookingConfirmation) error
}

// LogSender stands in when SMTP is not configured (local runs, tests).
type LogSender struct{}

func (LogSender) SendBookingConfirmation(_ context.Context, msg BookingConfirmation) error {
	log.Printf("notification booking_id=%d recipient=%s hotel=%q total=%s%.2f",
		msg.BookingID, msg.RecipientEmail, msg.HotelName, msg.Currency, msg.TotalPrice)
	return nil
}
