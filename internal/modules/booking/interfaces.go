package booking

import (
	"context"
	"time"

	"quickstay/internal/domain"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Booking, error)
	SetPaid(ctx context.Context, id int64) error
}

type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type HotelReader interface {
	GetByOwnerID(ctx context.Context, ownerID string) (*domain.Hotel, error)
}
