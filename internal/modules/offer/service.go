package offer

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"quickstay/internal/domain"
	"quickstay/internal/pkg/stay"
	"quickstay/internal/pkg/validator"
)

type Service struct {
	offers OfferRepository
	hotels HotelReader
	rooms  RoomReader
}

func NewService(offers OfferRepository, hotels HotelReader, rooms RoomReader) *Service {
	return &Service{offers: offers, hotels: hotels, rooms: rooms}
}

// CreateOffer publishes a discount on one of the caller's rooms.
func (s *Service) CreateOffer(ctx context.Context, ownerID string, req CreateOfferRequest) (*domain.Offer, error) {
	hotel, err := s.hotels.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoHotel
		}
		return nil, err
	}

	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}
	start, err := stay.ParseDate(req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := stay.ParseDate(req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}
	if !end.After(start) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}
	if room.HotelID != hotel.ID {
		return nil, ErrForbidden
	}

	o := &domain.Offer{
		HotelID:            hotel.ID,
		RoomID:             room.ID,
		Title:              req.Title,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		StartDate:          start,
		EndDate:            end,
		IsActive:           true,
	}
	if err := s.offers.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return s.offers.ListAll(ctx)
}

func (s *Service) GetOffer(ctx context.Context, id int64) (*domain.Offer, error) {
	o, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// UpdateOffer applies the non-nil fields of the request to the caller's
// offer.
func (s *Service) UpdateOffer(ctx context.Context, ownerID string, id int64, req UpdateOfferRequest) (*domain.Offer, error) {
	o, err := s.ownedOffer(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		o.Title = *req.Title
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.DiscountPercentage != nil {
		if *req.DiscountPercentage <= 0 || *req.DiscountPercentage > 100 {
			return nil, ErrValidation
		}
		o.DiscountPercentage = *req.DiscountPercentage
	}
	if req.StartDate != nil {
		start, err := stay.ParseDate(*req.StartDate)
		if err != nil {
			return nil, ErrValidation
		}
		o.StartDate = start
	}
	if req.EndDate != nil {
		end, err := stay.ParseDate(*req.EndDate)
		if err != nil {
			return nil, ErrValidation
		}
		o.EndDate = end
	}
	if !o.EndDate.After(o.StartDate) {
		return nil, ErrValidation
	}
	if req.IsActive != nil {
		o.IsActive = *req.IsActive
	}

	if err := s.offers.Update(ctx, o); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *Service) DeleteOffer(ctx context.Context, ownerID string, id int64) error {
	if _, err := s.ownedOffer(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.offers.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ownedOffer(ctx context.Context, ownerID string, id int64) (*domain.Offer, error) {
	o, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if o.Hotel == nil || o.Hotel.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return o, nil
}
