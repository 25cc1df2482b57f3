package model

import "time"

// News represents a news article
type News struct {
	ID            int        `json:"id" db:"id"`
	TitleEN       string     `json:"title_en" db:"title_en"`
	TitleAM       string     `json:"title_am" db:"title_am"`
	DescriptionEN string     `json:"description_en" db:"description_en"`
	DescriptionAM string     `json:"description_am" db:"description_am"`
	CategoryEN    string     `json:"category_en" db:"category_en"`
	CategoryAM    string     `json:"category_am" db:"category_am"`
	ImageURL      *string    `json:"image_url" db:"image_url"`
	Date          *time.Time `json:"date" db:"date"`
	IsPublished   bool       `json:"is_published" db:"is_published"`
	Views         int        `json:"views" db:"views"`
	CreatedBy     *string    `json:"created_by" db:"created_by"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// NewsInput is the form payload for creating or updating a news article
type NewsInput struct {
	TitleEN       string `form:"title_en" binding:"required,max=255"`
	TitleAM       string `form:"title_am" binding:"required,max=255"`
	DescriptionEN string `form:"description_en" binding:"required"`
	DescriptionAM string `form:"description_am" binding:"required"`
	CategoryEN    string `form:"category_en" binding:"omitempty,max=50"`
	CategoryAM    string `form:"category_am" binding:"omitempty,max=50"`
	Date          string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	IsPublished   *bool  `form:"is_published"`
}
