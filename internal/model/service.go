package model

import "time"

// Service represents a transport service offered by the bureau
type Service struct {
	ID            int       `json:"id" db:"id"`
	TitleEN       string    `json:"title_en" db:"title_en"`
	TitleAM       string    `json:"title_am" db:"title_am"`
	DescriptionEN *string   `json:"description_en" db:"description_en"`
	DescriptionAM *string   `json:"description_am" db:"description_am"`
	Icon          string    `json:"icon" db:"icon"`
	ImageURL      *string   `json:"image_url" db:"image_url"`
	DisplayOrder  int       `json:"display_order" db:"display_order"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// ServiceInput is the form payload for creating or updating a service
type ServiceInput struct {
	TitleEN       string  `form:"title_en" binding:"required,max=255"`
	TitleAM       string  `form:"title_am" binding:"required,max=255"`
	DescriptionEN *string `form:"description_en"`
	DescriptionAM *string `form:"description_am"`
	Icon          string  `form:"icon" binding:"omitempty,max=100"`
	DisplayOrder  int     `form:"display_order"`
	IsActive      *bool   `form:"is_active"`
}
