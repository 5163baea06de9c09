package booking

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"quickstay/internal/domain"
	"quickstay/internal/notification"
	"quickstay/internal/pkg/lock"
	"quickstay/internal/pkg/stay"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomReader
	hotels   HotelReader
	mailer   notification.Sender
	locks    *lock.Keyed

	paymentSecret string
	currency      string
}

func NewService(
	bookings BookingRepository,
	rooms RoomReader,
	hotels HotelReader,
	mailer notification.Sender,
	paymentSecret string,
	currency string,
) *Service {
	return &Service{
		bookings:      bookings,
		rooms:         rooms,
		hotels:        hotels,
		mailer:        mailer,
		locks:         lock.NewKeyed(),
		paymentSecret: paymentSecret,
		currency:      currency,
	}
}

// IsAvailable reports whether the room has no booking overlapping the
// half-open range [checkIn, checkOut). A storage failure is returned as an
// error, never read as "unavailable".
func (s *Service) IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, ErrValidation
	}

	cnt, err := s.bookings.CountOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

func (s *Service) CheckAvailability(ctx context.Context, req CheckAvailabilityRequest) (bool, error) {
	checkIn, err := stay.ParseDate(req.CheckInDate)
	if err != nil {
		return false, ErrValidation
	}
	checkOut, err := stay.ParseDate(req.CheckOutDate)
	if err != nil {
		return false, ErrValidation
	}

	return s.IsAvailable(ctx, req.RoomID, checkIn, checkOut)
}

// CreateBooking re-checks availability under a per-room lock before
// inserting, so two concurrent requests for overlapping dates cannot both
// pass the check. On PostgreSQL the insert is additionally conditioned on
// non-overlap by the idx_no_double_booking exclusion constraint.
func (s *Service) CreateBooking(ctx context.Context, user *domain.User, req CreateBookingRequest) (*domain.Booking, error) {
	if req.Guests < 1 {
		return nil, ErrValidation
	}

	checkIn, err := stay.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := stay.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b, err := s.reserve(ctx, user.ID, room, checkIn, checkOut, req.Guests)
	if err != nil {
		return nil, err
	}

	s.dispatchConfirmation(user, room, b)

	return b, nil
}

// reserve holds the room's lock across the availability re-check and the
// insert. The lock is released before any notification work happens.
func (s *Service) reserve(ctx context.Context, userID string, room *domain.Room, checkIn, checkOut time.Time, guests int) (*domain.Booking, error) {
	s.locks.Lock(room.ID)
	defer s.locks.Unlock(room.ID)

	cnt, err := s.bookings.CountOverlapping(ctx, room.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrNotAvailable
	}

	nights := stay.Nights(checkIn, checkOut)

	b := &domain.Booking{
		UserID:     userID,
		RoomID:     room.ID,
		HotelID:    room.HotelID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     guests,
		TotalPrice: room.PricePerNight * float64(nights),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isNoOverlapViolation(err) {
			return nil, ErrNotAvailable
		}
		return nil, err
	}

	return b, nil
}

// dispatchConfirmation sends the booking email without blocking the request
// or holding any lock. Failures are logged, never surfaced.
func (s *Service) dispatchConfirmation(user *domain.User, room *domain.Room, b *domain.Booking) {
	if s.mailer == nil || user.Email == "" {
		return
	}

	msg := notification.BookingConfirmation{
		BookingID:      b.ID,
		RecipientEmail: user.Email,
		RecipientName:  user.Username,
		CheckIn:        b.CheckIn,
		TotalPrice:     b.TotalPrice,
		Currency:       s.currency,
	}
	if room.Hotel != nil {
		msg.HotelName = room.Hotel.Name
		msg.HotelAddress = room.Hotel.Address
	}

	go func() {
		if err := s.mailer.SendBookingConfirmation(context.Background(), msg); err != nil {
			log.Printf("booking confirmation email failed booking_id=%d: %v", b.ID, err)
		}
	}()
}

func (s *Service) GetUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// GetHotelDashboard aggregates committed bookings for the caller's hotel.
func (s *Service) GetHotelDashboard(ctx context.Context, ownerID string) (*Dashboard, error) {
	hotel, err := s.hotels.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bookings, err := s.bookings.ListByHotel(ctx, hotel.ID)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, b := range bookings {
		revenue += b.TotalPrice
	}

	return &Dashboard{
		Bookings:      bookings,
		TotalBookings: len(bookings),
		TotalRevenue:  revenue,
	}, nil
}

// ConfirmPayment applies the payment processor's callback, flipping the
// booking's paid flag. Replayed deliveries for an already-paid booking are
// accepted silently.
func (s *Service) ConfirmPayment(ctx context.Context, req PaymentWebhookRequest) error {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !strings.EqualFold(req.Signature, PaymentSignature(req.BookingID, req.Amount, s.paymentSecret)) {
		return ErrInvalidSignature
	}
	if req.Amount != b.TotalPrice {
		return ErrAmountMismatch
	}

	if b.Paid {
		return nil
	}
	return s.bookings.SetPaid(ctx, b.ID)
}

// PaymentSignature is the md5 digest the processor sends with its callback.
func PaymentSignature(bookingID int64, amount float64, secret string) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%d:%.2f:%s", bookingID, amount, secret)))
	return hex.EncodeToString(sum[:])
}

func isNoOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.ConstraintName != "idx_no_double_booking" {
		return false
	}
	// 23P01 exclusion_violation; 23505 unique_violation kept for older
	// schemas that used a unique index.
	return pgErr.Code == "23P01" || pgErr.Code == "23505"
}
