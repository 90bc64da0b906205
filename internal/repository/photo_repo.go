package repository

import (
	"context"

	"gorm.io/gorm"

	"photo-backend/internal/models"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// List returns every photo ordered by id.
func (r *PhotoRepository) List(ctx context.Context) ([]models.Photo, error) {
	photos := []models.Photo{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&photos).Error; err != nil {
		return nil, translate(err)
	}
	return photos, nil
}

func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	return translate(r.db.WithContext(ctx).Omit("User").Create(photo).Error)
}

// FindByIDWithUser loads a photo and its owner.
func (r *PhotoRepository) FindByIDWithUser(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&photo, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &photo, nil
}
