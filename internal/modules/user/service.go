package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"quickstay/internal/domain"
)

// recentCityLimit caps the search history ring.
const recentCityLimit = 3

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// StoreRecentSearchedCity appends the city to the user's search history,
// evicting the oldest entry past the limit. Returns the updated list.
func (s *Service) StoreRecentSearchedCity(ctx context.Context, userID, city string) ([]string, error) {
	if city == "" {
		return nil, ErrValidation
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cities := append(u.RecentSearchedCities, city)
	if len(cities) > recentCityLimit {
		cities = cities[len(cities)-recentCityLimit:]
	}

	if err := s.users.UpdateRecentSearchedCities(ctx, userID, cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// ApplyIdentityEvent syncs an account from the identity provider's webhook.
func (s *Service) ApplyIdentityEvent(ctx context.Context, req IdentityWebhookRequest) error {
	switch req.Type {
	case "user.created", "user.updated":
		if req.Data.ID == "" {
			return ErrValidation
		}
		return s.users.Upsert(ctx, &domain.User{
			ID:       req.Data.ID,
			Username: req.Data.Username,
			Email:    req.Data.Email,
			Image:    req.Data.Image,
			Role:     domain.RoleUser,
		})
	case "user.deleted":
		if req.Data.ID == "" {
			return ErrValidation
		}
		return s.users.Delete(ctx, req.Data.ID)
	}
	return ErrValidation
}
