package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"quickstay/internal/domain"
	"quickstay/internal/notification"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int64, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) SetPaid(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoomReader struct {
	mock.Mock
}

func (m *MockRoomReader) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
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

type MockSender struct {
	mock.Mock
	done chan struct{}
}

func newMockSender() *MockSender {
	return &MockSender{done: make(chan struct{})}
}

func (m *MockSender) SendBookingConfirmation(ctx context.Context, msg notification.BookingConfirmation) error {
	args := m.Called(ctx, msg)
	close(m.done)
	return args.Error(0)
}

func waitFor(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification dispatch")
	}
}

func testRoom() *domain.Room {
	return &domain.Room{
		ID:            10,
		HotelID:       5,
		RoomType:      domain.RoomDoubleBed,
		PricePerNight: 100,
		IsAvailable:   true,
		Hotel: &domain.Hotel{
			ID:      5,
			OwnerID: "owner_1",
			Name:    "Grand Plaza",
			Address: "1 Main St",
			City:    "Amsterdam",
		},
	}
}

func testUser() *domain.User {
	return &domain.User{
		ID:       "user_42",
		Username: "Alice",
		Email:    "alice@example.com",
		Role:     domain.RoleUser,
	}
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomReader)
	mockMailer := newMockSender()

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	mockBookings.On("CountOverlapping", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(int64(0), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockMailer.On("SendBookingConfirmation", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockRooms, nil, mockMailer, "secret", "$")

	b, err := service.CreateBooking(context.Background(), testUser(), CreateBookingRequest{
		RoomID:       10,
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-03",
		Guests:       2,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	// 2 nights at 100 per night
	assert.Equal(t, 200.0, b.TotalPrice)
	assert.Equal(t, int64(5), b.HotelID)
	assert.Equal(t, "user_42", b.UserID)
	assert.False(t, b.Paid)

	waitFor(t, mockMailer.done)
	sent := mockMailer.Calls[0].Arguments.Get(1).(notification.BookingConfirmation)
	assert.Equal(t, int64(999), sent.BookingID)
	assert.Equal(t, "Grand Plaza", sent.HotelName)
	assert.Equal(t, 200.0, sent.TotalPrice)
}

func TestService_CreateBooking_InvalidGuests(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomReader), nil, nil, "secret", "$")

	_, err := service.CreateBooking(context.Background(), testUser(), CreateBookingRequest{
		RoomID:       10,
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-03",
		Guests:       0,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_InvalidDateRange(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomReader), nil, nil, "secret", "$")

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"inverted", "2024-01-05", "2024-01-03"},
		{"zero nights", "2024-01-03", "2024-01-03"},
		{"unparseable", "03/01/2024", "2024-01-05"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateBooking(context.Background(), testUser(), CreateBookingRequest{
				RoomID:       10,
				CheckInDate:  tc.checkIn,
				CheckOutDate: tc.checkOut,
				Guests:       1,
			})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestService_CreateBooking_RoomNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomReader)
	mockRooms.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockRooms, nil, nil, "secret", "$")

	_, err := service.CreateBooking(context.Background(), testUser(), CreateBookingRequest{
		RoomID:       77,
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-03",
		Guests:       1,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_CreateBooking_Unavailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomReader)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	mockBookings.On("CountOverlapping", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(int64(1), nil)

	service := NewService(mockBookings, mockRooms, nil, nil, "secret", "$")

	_, err := service.CreateBooking(context.Background(), testUser(), CreateBookingRequest{
		RoomID:       10,
		CheckInDate:  "2024-06-04",
		CheckOutDate: "2024-06-06",
		Guests:       1,
	})

	assert.ErrorIs(t, err, ErrNotAvailable)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_ExclusionConstraintViolation(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomReader)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	mockBookings.On("CountOverlapping", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(int64(0), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
		Code:           "23P01",
		ConstraintName: "idx_no_double_booking",
	})

	service := NewService(mockBookings, mockRooms, nil, nil, "secret", "$")

	_, err := service.CreateBooking(context.Background(), testUser(), CreateBookingRequest{
		RoomID:       10,
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-03",
		Guests:       1,
	})
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestService_CreateBooking_StorageErrorPropagates(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomReader)

	boom := errors.New("connection reset")
	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	mockBookings.On("CountOverlapping", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(int64(0), boom)

	service := NewService(mockBookings, mockRooms, nil, nil, "secret", "$")

	_, err := service.CreateBooking(context.Background(), testUser(), CreateBookingRequest{
		RoomID:       10,
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-03",
		Guests:       1,
	})
	assert.ErrorIs(t, err, boom)
}

func TestService_CreateBooking_MailFailureDoesNotFailBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomReader)
	mockMailer := newMockSender()

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(testRoom(), nil)
	mockBookings.On("CountOverlapping", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(int64(0), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockMailer.On("SendBookingConfirmation", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	service := NewService(mockBookings, mockRooms, nil, mockMailer, "secret", "$")

	b, err := service.CreateBooking(context.Background(), testUser(), CreateBookingRequest{
		RoomID:       10,
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-02",
		Guests:       1,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	waitFor(t, mockMailer.done)
}

func TestService_IsAvailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	in := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	out := time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)

	mockBookings.On("CountOverlapping", mock.Anything, int64(10), in, out).Return(int64(1), nil)
	service := NewService(mockBookings, new(MockRoomReader), nil, nil, "secret", "$")

	available, err := service.IsAvailable(context.Background(), 10, in, out)
	assert.NoError(t, err)
	assert.False(t, available)

	// inverted range is rejected before querying
	_, err = service.IsAvailable(context.Background(), 10, out, in)
	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNumberOfCalls(t, "CountOverlapping", 1)
}

func TestService_IsAvailable_StorageError(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	boom := errors.New("storage down")
	mockBookings.On("CountOverlapping", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(int64(0), boom)

	service := NewService(mockBookings, new(MockRoomReader), nil, nil, "secret", "$")

	_, err := service.IsAvailable(context.Background(),
		10,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	)
	assert.ErrorIs(t, err, boom)
}

func TestService_GetHotelDashboard(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockHotels := new(MockHotelReader)

	mockHotels.On("GetByOwnerID", mock.Anything, "owner_1").Return(&domain.Hotel{ID: 5, OwnerID: "owner_1"}, nil)
	mockBookings.On("ListByHotel", mock.Anything, int64(5)).Return([]domain.Booking{
		{ID: 1, TotalPrice: 200},
		{ID: 2, TotalPrice: 350.5},
	}, nil)

	service := NewService(mockBookings, new(MockRoomReader), mockHotels, nil, "secret", "$")

	dash, err := service.GetHotelDashboard(context.Background(), "owner_1")
	assert.NoError(t, err)
	assert.Equal(t, 2, dash.TotalBookings)
	assert.Equal(t, 550.5, dash.TotalRevenue)
}

func TestService_GetHotelDashboard_NoHotel(t *testing.T) {
	mockHotels := new(MockHotelReader)
	mockHotels.On("GetByOwnerID", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(new(MockBookingRepository), new(MockRoomReader), mockHotels, nil, "secret", "$")

	_, err := service.GetHotelDashboard(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ConfirmPayment(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{ID: 42, TotalPrice: 200}, nil)
	mockBookings.On("SetPaid", mock.Anything, int64(42)).Return(nil)

	service := NewService(mockBookings, new(MockRoomReader), nil, nil, "secret", "$")

	err := service.ConfirmPayment(context.Background(), PaymentWebhookRequest{
		BookingID: 42,
		Amount:    200,
		Signature: PaymentSignature(42, 200, "secret"),
	})
	assert.NoError(t, err)
	mockBookings.AssertCalled(t, "SetPaid", mock.Anything, int64(42))
}

func TestService_ConfirmPayment_BadSignature(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{ID: 42, TotalPrice: 200}, nil)

	service := NewService(mockBookings, new(MockRoomReader), nil, nil, "secret", "$")

	err := service.ConfirmPayment(context.Background(), PaymentWebhookRequest{
		BookingID: 42,
		Amount:    200,
		Signature: PaymentSignature(42, 200, "wrong-secret"),
	})
	assert.ErrorIs(t, err, ErrInvalidSignature)
	mockBookings.AssertNotCalled(t, "SetPaid", mock.Anything, mock.Anything)
}

func TestService_ConfirmPayment_AmountMismatch(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{ID: 42, TotalPrice: 200}, nil)

	service := NewService(mockBookings, new(MockRoomReader), nil, nil, "secret", "$")

	err := service.ConfirmPayment(context.Background(), PaymentWebhookRequest{
		BookingID: 42,
		Amount:    150,
		Signature: PaymentSignature(42, 150, "secret"),
	})
	assert.ErrorIs(t, err, ErrAmountMismatch)
}

func TestService_ConfirmPayment_AlreadyPaid(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{ID: 42, TotalPrice: 200, Paid: true}, nil)

	service := NewService(mockBookings, new(MockRoomReader), nil, nil, "secret", "$")

	err := service.ConfirmPayment(context.Background(), PaymentWebhookRequest{
		BookingID: 42,
		Amount:    200,
		Signature: PaymentSignature(42, 200, "secret"),
	})
	assert.NoError(t, err)
	mockBookings.AssertNotCalled(t, "SetPaid", mock.Anything, mock.Anything)
}
