package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quickstay/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID                   string         `gorm:"column:id;primaryKey"`
	Username             string         `gorm:"column:username"`
	Email                string         `gorm:"column:email;index"`
	Image                string         `gorm:"column:image"`
	Role                 string         `gorm:"column:role"`
	RecentSearchedCities datatypes.JSON `gorm:"column:recent_searched_cities"`
	CreatedAt            time.Time      `gorm:"column:created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:                   m.ID,
		Username:             m.Username,
		Email:                m.Email,
		Image:                m.Image,
		Role:                 domain.Role(m.Role),
		RecentSearchedCities: stringsFromJSON(m.RecentSearchedCities),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:                   u.ID,
		Username:             u.Username,
		Email:                u.Email,
		Image:                u.Image,
		Role:                 string(u.Role),
		RecentSearchedCities: toJSON(u.RecentSearchedCities),
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

// Upsert inserts or refreshes the account record pushed by the identity
// provider. The role column is kept on update so an owner stays an owner.
func (r *UserRepository) Upsert(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "email", "image", "updated_at"}),
	}).Create(&m)
	return tx.Error
}

func (r *UserRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Update("role", string(role))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) UpdateRecentSearchedCities(ctx context.Context, id string, cities []string) error {
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Update("recent_searched_cities", toJSON(cities))
	return tx.Error
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&userModel{}, "id = ?", id).Error
}
