package hotel

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"quickstay/internal/domain"
)

type Service struct {
	hotels HotelRepository
	users  RoleUpdater
}

func NewService(hotels HotelRepository, users RoleUpdater) *Service {
	return &Service{hotels: hotels, users: users}
}

// RegisterHotel creates the caller's hotel and promotes the account to the
// owner role. One hotel per account.
func (s *Service) RegisterHotel(ctx context.Context, ownerID string, req RegisterHotelRequest) (*domain.Hotel, error) {
	if _, err := s.hotels.GetByOwnerID(ctx, ownerID); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	h := &domain.Hotel{
		OwnerID: ownerID,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Contact: req.Contact,
	}
	if err := s.hotels.Create(ctx, h); err != nil {
		return nil, err
	}

	if err := s.users.UpdateRole(ctx, ownerID, domain.RoleHotelOwner); err != nil {
		// hotel row exists; the role can be fixed on retry
		log.Printf("role promotion failed user_id=%s: %v", ownerID, err)
	}

	return h, nil
}

func (s *Service) GetOwnHotel(ctx context.Context, ownerID string) (*domain.Hotel, error) {
	h, err := s.hotels.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}
