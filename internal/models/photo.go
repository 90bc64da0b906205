package models

import "time"

// Photo is a user-owned image reference
type Photo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Caption   string    `gorm:"column:caption" json:"caption"`
	ImageURL  string    `gorm:"column:image_url;not null" json:"image_url"`
	UserID    uint      `gorm:"column:user_id;not null" json:"UserId"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatePhotoRequest is the body of POST /photos. Pointers distinguish absent fields from empty ones.
type CreatePhotoRequest struct {
	Title    *string `json:"title"`
	Caption  *string `json:"caption"`
	ImageURL *string `json:"image_url"`
}

// PhotoDetail is a photo together with its owner's public fields
type PhotoDetail struct {
	ID        uint        `json:"id"`
	Title     string      `json:"title"`
	Caption   string      `json:"caption"`
	ImageURL  string      `json:"image_url"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	User      UserSummary `json:"User"`
}

// Detail flattens a photo with a loaded User into its detail representation.
func (p *Photo) Detail() PhotoDetail {
	d := PhotoDetail{
		ID:        p.ID,
		Title:     p.Title,
		Caption:   p.Caption,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.User != nil {
		d.User = p.User.Summary()
	}
	return d
}
