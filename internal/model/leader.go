package model

import "time"

// Leader represents a bureau leadership entry
type Leader struct {
	ID            int       `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	TitleEN       string    `json:"title_en" db:"title_en"`
	TitleAM       string    `json:"title_am" db:"title_am"`
	DescriptionEN *string   `json:"description_en" db:"description_en"`
	DescriptionAM *string   `json:"description_am" db:"description_am"`
	Phone         *string   `json:"phone" db:"phone"`
	Email         *string   `json:"email" db:"email"`
	ImageURL      *string   `json:"image_url" db:"image_url"`
	DisplayOrder  int       `json:"display_order" db:"display_order"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// LeaderInput is the form payload for creating or updating a leader
type LeaderInput struct {
	Name          string  `form:"name" binding:"required,max=255"`
	TitleEN       string  `form:"title_en" binding:"required,max=255"`
	TitleAM       string  `form:"title_am" binding:"required,max=255"`
	DescriptionEN *string `form:"description_en"`
	DescriptionAM *string `form:"description_am"`
	Phone         *string `form:"phone" binding:"omitempty,max=50"`
	Email         *string `form:"email" binding:"omitempty,email"`
	DisplayOrder  int     `form:"display_order"`
	IsActive      *bool   `form:"is_active"`
}
