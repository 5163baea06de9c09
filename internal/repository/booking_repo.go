package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"quickstay/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	UserID     string    `gorm:"column:user_id;index"`
	RoomID     int64     `gorm:"column:room_id;index"`
	HotelID    int64     `gorm:"column:hotel_id;index"`
	CheckIn    time.Time `gorm:"column:check_in"`
	CheckOut   time.Time `gorm:"column:check_out"`
	Guests     int       `gorm:"column:guests"`
	TotalPrice float64   `gorm:"column:total_price"`
	Paid       bool      `gorm:"column:paid"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	Room  *roomModel  `gorm:"foreignKey:RoomID"`
	Hotel *hotelModel `gorm:"foreignKey:HotelID"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:         m.ID,
		UserID:     m.UserID,
		RoomID:     m.RoomID,
		HotelID:    m.HotelID,
		CheckIn:    m.CheckIn,
		CheckOut:   m.CheckOut,
		Guests:     m.Guests,
		TotalPrice: m.TotalPrice,
		Paid:       m.Paid,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Room != nil {
		b.Room = toDomainRoom(*m.Room)
	}
	if m.Hotel != nil {
		b.Hotel = toDomainHotel(*m.Hotel)
	}
	return b
}

// Create inserts the booking. On PostgreSQL the insert is additionally
// guarded by the idx_no_double_booking exclusion constraint; a violation
// comes back as a pgconn error the service maps to a conflict.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := bookingModel{
		UserID:     b.UserID,
		RoomID:     b.RoomID,
		HotelID:    b.HotelID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		Paid:       b.Paid,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// CountOverlapping counts bookings on the room whose half-open
// [check_in, check_out) range intersects the requested one. The strict
// inequalities are the boundary policy: a stay checking out on date D does
// not collide with a stay checking in on D.
func (r *BookingRepository) CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("room_id = ? AND check_in < ? AND check_out > ?", roomID, checkOut, checkIn).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Hotel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Hotel").
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// SetPaid marks a booking paid. Repeated webhook deliveries are harmless.
func (r *BookingRepository) SetPaid(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("paid", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
