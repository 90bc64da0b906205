package services

import (
	"context"
	"fmt"
	"strings"

	"photo-backend/internal/metrics"
	"photo-backend/internal/models"
)

// PhotoStore is the persistence the photo service needs
type PhotoStore interface {
	List(ctx context.Context) ([]models.Photo, error)
	Create(ctx context.Context, photo *models.Photo) error
	FindByIDWithUser(ctx context.Context, id uint) (*models.Photo, error)
}

type PhotoService struct {
	photos PhotoStore
}

func NewPhotoService(photos PhotoStore) *PhotoService {
	return &PhotoService{photos: photos}
}

func (s *PhotoService) List(ctx context.Context) ([]models.Photo, error) {
	photos, err := s.photos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}

// Create validates req and stores a photo owned by userID.
func (s *PhotoService) Create(ctx context.Context, userID uint, req models.CreatePhotoRequest) (*models.Photo, error) {
	title := deref(req.Title)
	imageURL := deref(req.ImageURL)

	var messages []string
	messages = append(messages, check(strings.TrimSpace(title), titleRules...)...)
	messages = append(messages, check(imageURL, imageURLRules...)...)
	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	photo := &models.Photo{
		Title:    title,
		Caption:  deref(req.Caption),
		ImageURL: imageURL,
		UserID:   userID,
	}
	if photo.Caption == "" {
		photo.Caption = DefaultCaption(title, imageURL)
	}

	if err := s.photos.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("create photo: %w", err)
	}

	metrics.PhotosCreated.Inc()
	return photo, nil
}

// Get returns the photo with its owner, or models.ErrNotFound.
func (s *PhotoService) Get(ctx context.Context, id uint) (*models.Photo, error) {
	photo, err := s.photos.FindByIDWithUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if photo.User == nil {
		// owner row is gone; treat the photo as unresolvable
		return nil, models.ErrNotFound
	}
	return photo, nil
}

// DefaultCaption is used when a photo is created without a caption.
func DefaultCaption(title, imageURL string) string {
	return strings.ToUpper(title) + " " + imageURL
}
