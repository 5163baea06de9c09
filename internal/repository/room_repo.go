package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"quickstay/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID            int64          `gorm:"column:id;primaryKey"`
	HotelID       int64          `gorm:"column:hotel_id;index"`
	RoomType      string         `gorm:"column:room_type"`
	PricePerNight float64        `gorm:"column:price_per_night"`
	Amenities     datatypes.JSON `gorm:"column:amenities"`
	Images        datatypes.JSON `gorm:"column:images"`
	IsAvailable   bool           `gorm:"column:is_available;default:true"`
	Ratings       datatypes.JSON `gorm:"column:ratings"`
	AverageRating float64        `gorm:"column:average_rating"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`

	Hotel *hotelModel `gorm:"foreignKey:HotelID"`
}

func (roomModel) TableName() string { return "rooms" }

func ratingsFromJSON(raw datatypes.JSON) []domain.Rating {
	if len(raw) == 0 {
		return nil
	}
	var out []domain.Rating
	_ = json.Unmarshal(raw, &out)
	return out
}

func toDomainRoom(m roomModel) *domain.Room {
	room := &domain.Room{
		ID:            m.ID,
		HotelID:       m.HotelID,
		RoomType:      domain.RoomType(m.RoomType),
		PricePerNight: m.PricePerNight,
		Amenities:     stringsFromJSON(m.Amenities),
		Images:        stringsFromJSON(m.Images),
		IsAvailable:   m.IsAvailable,
		Ratings:       ratingsFromJSON(m.Ratings),
		AverageRating: m.AverageRating,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Hotel != nil {
		room.Hotel = toDomainHotel(*m.Hotel)
	}
	return room
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := roomModel{
		HotelID:       room.HotelID,
		RoomType:      string(room.RoomType),
		PricePerNight: room.PricePerNight,
		Amenities:     toJSON(room.Amenities),
		Images:        toJSON(room.Images),
		IsAvailable:   true,
		Ratings:       toJSON([]domain.Rating{}),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).Preload("Hotel").First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

// ListAvailable returns rooms whose availability flag is on, newest first.
func (r *RoomRepository) ListAvailable(ctx context.Context) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).
		Preload("Hotel").
		Where("is_available = ?", true).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).
		Preload("Hotel").
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) UpdateAvailability(ctx context.Context, id int64, available bool) error {
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ?", id).
		Update("is_available", available)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateRatings writes the full ratings list and the recomputed average in
// one statement. Callers serialize per room, so the last write always holds
// a list derived from the current row.
func (r *RoomRepository) UpdateRatings(ctx context.Context, id int64, ratings []domain.Rating, average float64) error {
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"ratings":        toJSON(ratings),
			"average_rating": average,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
