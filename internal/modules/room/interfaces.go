package room

import (
	"context"

	"quickstay/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListAvailable(ctx context.Context) ([]domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	UpdateAvailability(ctx context.Context, id int64, available bool) error
	UpdateRatings(ctx context.Context, id int64, ratings []domain.Rating, average float64) error
}

type HotelReader interface {
	GetByOwnerID(ctx context.Context, ownerID string) (*domain.Hotel, error)
}
