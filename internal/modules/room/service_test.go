package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"quickstay/internal/domain"
)

// Mock repositories

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil && args.Error(0) == nil {
		room.ID = 10
	}
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListAvailable(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) UpdateAvailability(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func (m *MockRoomRepository) UpdateRatings(ctx context.Context, id int64, ratings []domain.Rating, average float64) error {
	args := m.Called(ctx, id, ratings, average)
	return args.Error(0)
}

type MockHotelReader struct {
	mock.Mock
}

func (m *MockHotelReader) GetByOwnerID(ctx context.Context, ownerID string) (*domain.Hotel, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func ownedRoom(ownerID string) *domain.Room {
	return &domain.Room{
		ID:            10,
		HotelID:       5,
		RoomType:      domain.RoomDoubleBed,
		PricePerNight: 100,
		IsAvailable:   true,
		Hotel:         &domain.Hotel{ID: 5, OwnerID: ownerID},
	}
}

func TestService_CreateRoom_Success(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockHotels := new(MockHotelReader)

	mockHotels.On("GetByOwnerID", mock.Anything, "owner_1").Return(&domain.Hotel{ID: 5, OwnerID: "owner_1"}, nil)
	mockRooms.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRooms, mockHotels)

	room, err := service.CreateRoom(context.Background(), "owner_1", CreateRoomRequest{
		RoomType:      "Double Bed",
		PricePerNight: 150,
		Amenities:     []string{"Free WiFi", "Room Service"},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), room.HotelID)
	assert.Equal(t, domain.RoomDoubleBed, room.RoomType)
	assert.True(t, room.IsAvailable)
}

func TestService_CreateRoom_NoHotel(t *testing.T) {
	mockHotels := new(MockHotelReader)
	mockHotels.On("GetByOwnerID", mock.Anything, "owner_1").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(MockRoomRepository), mockHotels)

	_, err := service.CreateRoom(context.Background(), "owner_1", CreateRoomRequest{
		RoomType:      "Double Bed",
		PricePerNight: 150,
	})
	assert.ErrorIs(t, err, ErrNoHotel)
}

func TestService_CreateRoom_Invalid(t *testing.T) {
	mockHotels := new(MockHotelReader)
	mockHotels.On("GetByOwnerID", mock.Anything, "owner_1").Return(&domain.Hotel{ID: 5, OwnerID: "owner_1"}, nil)

	service := NewService(new(MockRoomRepository), mockHotels)

	_, err := service.CreateRoom(context.Background(), "owner_1", CreateRoomRequest{
		RoomType:      "Penthouse",
		PricePerNight: 150,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateRoom(context.Background(), "owner_1", CreateRoomRequest{
		RoomType:      "Double Bed",
		PricePerNight: 0,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ToggleAvailability(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(ownedRoom("owner_1"), nil)
	mockRooms.On("UpdateAvailability", mock.Anything, int64(10), false).Return(nil)

	service := NewService(mockRooms, new(MockHotelReader))

	available, err := service.ToggleAvailability(context.Background(), "owner_1", 10)
	assert.NoError(t, err)
	assert.False(t, available)
}

func TestService_ToggleAvailability_WrongOwner(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(ownedRoom("owner_1"), nil)

	service := NewService(mockRooms, new(MockHotelReader))

	_, err := service.ToggleAvailability(context.Background(), "intruder", 10)
	assert.ErrorIs(t, err, ErrForbidden)
	mockRooms.AssertNotCalled(t, "UpdateAvailability", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RateRoom_Average(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	room := ownedRoom("owner_1")
	room.Ratings = []domain.Rating{{UserID: "user_a", Value: 5}}
	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(room, nil)
	mockRooms.On("UpdateRatings", mock.Anything, int64(10), mock.Anything, 4.0).Return(nil)

	service := NewService(mockRooms, new(MockHotelReader))

	// scores 5 and 3 average to 4.0
	average, err := service.RateRoom(context.Background(), "user_b", 10, 3)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, average)
}

func TestService_RateRoom_ReplacesOwnRating(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	room := ownedRoom("owner_1")
	room.Ratings = []domain.Rating{
		{UserID: "user_a", Value: 5},
		{UserID: "user_b", Value: 3},
	}
	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(room, nil)
	mockRooms.On("UpdateRatings", mock.Anything, int64(10), mock.Anything, 3.0).Return(nil)

	service := NewService(mockRooms, new(MockHotelReader))

	// user_b re-rates 3 -> 1; list becomes [5, 1], average 3.0
	average, err := service.RateRoom(context.Background(), "user_b", 10, 1)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, average)

	stored := mockRooms.Calls[1].Arguments.Get(2).([]domain.Rating)
	assert.Len(t, stored, 2)
	assert.Equal(t, domain.Rating{UserID: "user_b", Value: 1}, stored[1])
}

func TestService_RateRoom_SameValueIdempotent(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	room := ownedRoom("owner_1")
	room.Ratings = []domain.Rating{{UserID: "user_b", Value: 4}}
	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(room, nil)
	mockRooms.On("UpdateRatings", mock.Anything, int64(10), mock.Anything, 4.0).Return(nil)

	service := NewService(mockRooms, new(MockHotelReader))

	average, err := service.RateRoom(context.Background(), "user_b", 10, 4)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, average)

	stored := mockRooms.Calls[1].Arguments.Get(2).([]domain.Rating)
	assert.Len(t, stored, 1)
}

func TestService_RateRoom_OutOfRange(t *testing.T) {
	service := NewService(new(MockRoomRepository), new(MockHotelReader))

	for _, v := range []int{0, 6, -1} {
		_, err := service.RateRoom(context.Background(), "user_b", 10, v)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestService_RateRoom_RoomNotFound(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockRooms, new(MockHotelReader))

	_, err := service.RateRoom(context.Background(), "user_b", 99, 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAverageRating_OneDecimal(t *testing.T) {
	ratings := []domain.Rating{
		{UserID: "a", Value: 5},
		{UserID: "b", Value: 4},
		{UserID: "c", Value: 4},
	}
	// 13/3 = 4.333... rounds to 4.3
	assert.Equal(t, 4.3, averageRating(ratings))
	assert.Equal(t, 0.0, averageRating(nil))
}
