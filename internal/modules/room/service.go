package room

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"quickstay/internal/domain"
	"quickstay/internal/pkg/lock"
	"quickstay/internal/pkg/validator"
)

type Service struct {
	rooms  RoomRepository
	hotels HotelReader
	locks  *lock.Keyed
}

func NewService(rooms RoomRepository, hotels HotelReader) *Service {
	return &Service{
		rooms:  rooms,
		hotels: hotels,
		locks:  lock.NewKeyed(),
	}
}

// CreateRoom adds a room to the caller's hotel. The caller must already own
// a hotel.
func (s *Service) CreateRoom(ctx context.Context, ownerID string, req CreateRoomRequest) (*domain.Room, error) {
	hotel, err := s.hotels.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoHotel
		}
		return nil, err
	}

	roomType, err := domain.ParseRoomType(req.RoomType)
	if err != nil {
		return nil, ErrValidation
	}
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation
	}

	room := &domain.Room{
		HotelID:       hotel.ID,
		RoomType:      roomType,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
		Images:        req.Images,
		IsAvailable:   true,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// ListAvailable is the public room listing.
func (s *Service) ListAvailable(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.ListAvailable(ctx)
}

// ListByOwner returns every room of the caller's hotel, including ones with
// availability switched off.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]domain.Room, error) {
	hotel, err := s.hotels.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoHotel
		}
		return nil, err
	}
	return s.rooms.ListByHotel(ctx, hotel.ID)
}

// ToggleAvailability flips the room's listing flag and returns the new
// value. Only the owning hotel's account may toggle.
func (s *Service) ToggleAvailability(ctx context.Context, ownerID string, roomID int64) (bool, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	if room.Hotel == nil || room.Hotel.OwnerID != ownerID {
		return false, ErrForbidden
	}

	next := !room.IsAvailable
	if err := s.rooms.UpdateAvailability(ctx, roomID, next); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return next, nil
}

// RateRoom records the user's score for a room and returns the new average.
// A user has at most one rating per room; rating again replaces the old
// score. The read-modify-write runs under the room's lock so concurrent
// ratings cannot drop each other.
func (s *Service) RateRoom(ctx context.Context, userID string, roomID int64, value int) (float64, error) {
	if value < 1 || value > 5 {
		return 0, ErrValidation
	}

	s.locks.Lock(roomID)
	defer s.locks.Unlock(roomID)

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	ratings := make([]domain.Rating, 0, len(room.Ratings)+1)
	for _, r := range room.Ratings {
		if r.UserID != userID {
			ratings = append(ratings, r)
		}
	}
	ratings = append(ratings, domain.Rating{UserID: userID, Value: value})

	average := averageRating(ratings)
	if err := s.rooms.UpdateRatings(ctx, roomID, ratings, average); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return average, nil
}

// averageRating is the mean score rounded to one decimal place.
func averageRating(ratings []domain.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int
	for _, r := range ratings {
		sum += r.Value
	}
	return math.Round(float64(sum)/float64(len(ratings))*10) / 10
}
