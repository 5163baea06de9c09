package user

import (
	"context"

	"quickstay/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) error
	UpdateRecentSearchedCities(ctx context.Context, id string, cities []string) error
	Delete(ctx context.Context, id string) error
}
