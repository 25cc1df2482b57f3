package model

import "time"

// Statistic represents a keyed headline figure shown on the public site
type Statistic struct {
	ID        int       `json:"id" db:"id"`
	Key       string    `json:"stat_key" db:"stat_key"`
	Value     string    `json:"stat_value" db:"stat_value"`
	LabelEN   *string   `json:"label_en" db:"label_en"`
	LabelAM   *string   `json:"label_am" db:"label_am"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StatisticInput is one entry of a bulk statistics update
type StatisticInput struct {
	Key     string  `json:"stat_key" binding:"required,max=50"`
	Value   string  `json:"stat_value" binding:"required,max=255"`
	LabelEN *string `json:"label_en" binding:"omitempty,max=100"`
	LabelAM *string `json:"label_am" binding:"omitempty,max=100"`
}

// DashboardCounts aggregates entity totals for the admin dashboard
type DashboardCounts struct {
	TotalLeaders       int `json:"total_leaders" db:"total_leaders"`
	TotalServices      int `json:"total_services" db:"total_services"`
	TotalNews          int `json:"total_news" db:"total_news"`
	TotalAnnouncements int `json:"total_announcements" db:"total_announcements"`
	UnreadMessages     int `json:"unread_messages" db:"unread_messages"`
	TotalAdmins        int `json:"total_admins" db:"total_admins"`
}
