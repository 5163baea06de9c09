package hotel

import (
	"context"

	"quickstay/internal/domain"
)

type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*domain.Hotel, error)
}

type RoleUpdater interface {
	UpdateRole(ctx context.Context, id string, role domain.Role) error
}
