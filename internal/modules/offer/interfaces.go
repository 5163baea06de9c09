package offer

import (
	"context"

	"quickstay/internal/domain"
)

type OfferRepository interface {
	Create(ctx context.Context, o *domain.Offer) error
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
	ListAll(ctx context.Context) ([]domain.Offer, error)
	Update(ctx context.Context, o *domain.Offer) error
	Delete(ctx context.Context, id int64) error
}

type HotelReader interface {
	GetByOwnerID(ctx context.Context, ownerID string) (*domain.Hotel, error)
}

type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
