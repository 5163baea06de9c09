package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"quickstay/internal/domain"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

type offerModel struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	HotelID            int64     `gorm:"column:hotel_id;index"`
	RoomID             int64     `gorm:"column:room_id;index"`
	Title              string    `gorm:"column:title"`
	Description        string    `gorm:"column:description"`
	DiscountPercentage float64   `gorm:"column:discount_percentage"`
	StartDate          time.Time `gorm:"column:start_date"`
	EndDate            time.Time `gorm:"column:end_date"`
	IsActive           bool      `gorm:"column:is_active;default:true"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`

	Hotel *hotelModel `gorm:"foreignKey:HotelID"`
	Room  *roomModel  `gorm:"foreignKey:RoomID"`
}

func (offerModel) TableName() string { return "offers" }

func toDomainOffer(m offerModel) *domain.Offer {
	o := &domain.Offer{
		ID:                 m.ID,
		HotelID:            m.HotelID,
		RoomID:             m.RoomID,
		Title:              m.Title,
		Description:        m.Description,
		DiscountPercentage: m.DiscountPercentage,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.Hotel != nil {
		o.Hotel = toDomainHotel(*m.Hotel)
	}
	if m.Room != nil {
		o.Room = toDomainRoom(*m.Room)
	}
	return o
}

func toOfferModel(o *domain.Offer) offerModel {
	return offerModel{
		ID:                 o.ID,
		HotelID:            o.HotelID,
		RoomID:             o.RoomID,
		Title:              o.Title,
		Description:        o.Description,
		DiscountPercentage: o.DiscountPercentage,
		StartDate:          o.StartDate,
		EndDate:            o.EndDate,
		IsActive:           o.IsActive,
	}
}

func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) error {
	m := toOfferModel(o)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainOffer(m)
	return nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	var m offerModel
	tx := r.db.WithContext(ctx).Preload("Hotel").Preload("Room").First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOffer(m), nil
}

func (r *OfferRepository) ListAll(ctx context.Context) ([]domain.Offer, error) {
	var ms []offerModel
	tx := r.db.WithContext(ctx).
		Preload("Hotel").
		Preload("Room").
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Offer, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainOffer(m))
	}
	return out, nil
}

func (r *OfferRepository) Update(ctx context.Context, o *domain.Offer) error {
	m := toOfferModel(o)
	tx := r.db.WithContext(ctx).
		Model(&offerModel{}).
		Where("id = ?", o.ID).
		Updates(map[string]any{
			"title":               m.Title,
			"description":         m.Description,
			"discount_percentage": m.DiscountPercentage,
			"start_date":          m.StartDate,
			"end_date":            m.EndDate,
			"is_active":           m.IsActive,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&offerModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
