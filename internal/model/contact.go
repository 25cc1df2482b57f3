package model

import "time"

// ContactMessage represents a message submitted through the public contact form
type ContactMessage struct {
	ID            int       `json:"id" db:"id"`
	FirstName     string    `json:"first_name" db:"first_name"`
	LastName      string    `json:"last_name" db:"last_name"`
	Email         string    `json:"email" db:"email"`
	Phone         *string   `json:"phone" db:"phone"`
	Subject       *string   `json:"subject" db:"subject"`
	Title         *string   `json:"title" db:"title"`
	Message       string    `json:"message" db:"message"`
	AttachmentURL *string   `json:"attachment_url" db:"attachment_url"`
	IsRead        bool      `json:"is_read" db:"is_read"`
	Replied       bool      `json:"replied" db:"replied"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ContactInput is the form payload for submitting a contact message
type ContactInput struct {
	FirstName string  `form:"first_name" binding:"required,max=100"`
	LastName  string  `form:"last_name" binding:"required,max=100"`
	Email     string  `form:"email" binding:"required,email"`
	Phone     *string `form:"phone" binding:"omitempty,max=50"`
	Subject   *string `form:"subject" binding:"omitempty,max=255"`
	Title     *string `form:"title" binding:"omitempty,max=255"`
	Message   string  `form:"message" binding:"required"`
}
