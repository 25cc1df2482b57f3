package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// schemaStatements create every table the system uses. All statements
// are idempotent so the bootstrap can run more than once.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS leaders (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		title_en VARCHAR(255) NOT NULL,
		title_am VARCHAR(255) NOT NULL,
		description_en TEXT,
		description_am TEXT,
		phone VARCHAR(50),
		email VARCHAR(255),
		image_url VARCHAR(500),
		display_order INT DEFAULT 0,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMPTZ DEFAULT NOW(),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id SERIAL PRIMARY KEY,
		title_en VARCHAR(255) NOT NULL,
		title_am VARCHAR(255) NOT NULL,
		description_en TEXT,
		description_am TEXT,
		icon VARCHAR(100) DEFAULT 'fa-cog',
		image_url VARCHAR(500),
		display_order INT DEFAULT 0,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMPTZ DEFAULT NOW(),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS news (
		id SERIAL PRIMARY KEY,
		title_en VARCHAR(255) NOT NULL,
		title_am VARCHAR(255) NOT NULL,
		description_en TEXT NOT NULL,
		description_am TEXT NOT NULL,
		category_en VARCHAR(50) DEFAULT 'Transport',
		category_am VARCHAR(50) DEFAULT 'ትራንስፖርት',
		image_url VARCHAR(500),
		date DATE,
		is_published BOOLEAN DEFAULT TRUE,
		views INT DEFAULT 0,
		created_by VARCHAR(100),
		created_at TIMESTAMPTZ DEFAULT NOW(),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS announcements (
		id SERIAL PRIMARY KEY,
		title_en VARCHAR(255) NOT NULL,
		title_am VARCHAR(255) NOT NULL,
		description_en TEXT NOT NULL,
		description_am TEXT NOT NULL,
		type VARCHAR(20) DEFAULT 'announcement'
			CHECK (type IN ('announcement', 'vacancy', 'media', 'event')),
		type_en VARCHAR(50) DEFAULT 'Announcement',
		type_am VARCHAR(50) DEFAULT 'ማስታወቂያ',
		attachment_url VARCHAR(500),
		date DATE,
		is_published BOOLEAN DEFAULT TRUE,
		created_by VARCHAR(100),
		created_at TIMESTAMPTZ DEFAULT NOW(),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50),
		subject VARCHAR(255),
		title VARCHAR(255),
		message TEXT NOT NULL,
		attachment_url VARCHAR(500),
		is_read BOOLEAN DEFAULT FALSE,
		replied BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		full_name VARCHAR(255),
		email VARCHAR(255),
		role VARCHAR(20) DEFAULT 'admin'
			CHECK (role IN ('super_admin', 'admin', 'editor')),
		is_active BOOLEAN DEFAULT TRUE,
		last_login TIMESTAMPTZ,
		created_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id SERIAL PRIMARY KEY,
		setting_key VARCHAR(100) UNIQUE NOT NULL,
		setting_value_en TEXT,
		setting_value_am TEXT,
		setting_type VARCHAR(50) DEFAULT 'text',
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS statistics (
		id SERIAL PRIMARY KEY,
		stat_key VARCHAR(50) UNIQUE NOT NULL,
		stat_value VARCHAR(255) NOT NULL,
		label_en VARCHAR(100),
		label_am VARCHAR(100),
		updated_at TIMESTAMPTZ DEFAULT NOW()
	)`,
}

type seedSetting struct {
	key     string
	valueEN string
	valueAM string
}

type seedStatistic struct {
	key     string
	value   string
	labelEN string
	labelAM string
}

var defaultSettings = []seedSetting{
	{"site_title", "Hadiya Zone Transport Bureau", "ሀዲያ ዞን ትራንስፖርት ቢሮ"},
	{"contact_phone", "+251-46-112-2334", ""},
	{"contact_email", "info@hadiyatransport.gov.et", ""},
	{"contact_address", "Hosaena, Ethiopia", "ሆሳዕና፣ ኢትዮጵያ"},
}

var defaultStatistics = []seedStatistic{
	{"vehicles", "5000", "Vehicles", "ተሽከርካሪዎች"},
	{"employees", "340", "Employees", "ሰራተኞች"},
	{"mass_transport", "20330", "Mass Transport", "ጅምላ ትራንስፖርት"},
}

// EnsureSchema creates the tables and seeds the default admin account,
// settings, statistics and sample content
func EnsureSchema(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	if err := seedAdmin(ctx, db); err != nil {
		return err
	}

	for _, s := range defaultSettings {
		var valueAM *string
		if s.valueAM != "" {
			valueAM = &s.valueAM
		}
		_, err := db.ExecContext(ctx,
			`INSERT INTO settings (setting_key, setting_value_en, setting_value_am)
			 VALUES ($1, $2, $3) ON CONFLICT (setting_key) DO NOTHING`,
			s.key, s.valueEN, valueAM)
		if err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", s.key, err)
		}
	}

	for _, s := range defaultStatistics {
		_, err := db.ExecContext(ctx,
			`INSERT INTO statistics (stat_key, stat_value, label_en, label_am)
			 VALUES ($1, $2, $3, $4) ON CONFLICT (stat_key) DO NOTHING`,
			s.key, s.value, s.labelEN, s.labelAM)
		if err != nil {
			return fmt.Errorf("failed to seed statistic %s: %w", s.key, err)
		}
	}

	if err := seedSampleContent(ctx, db); err != nil {
		return err
	}

	logger.Info("Database schema ensured")
	return nil
}

// seedAdmin inserts the default administrator when no account with that
// username exists yet
func seedAdmin(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM admin_users WHERE username = $1`, "admin"); err != nil {
		return fmt.Errorf("failed to check default admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO admin_users (username, password, full_name, email, role)
		 VALUES ($1, $2, $3, $4, $5)`,
		"admin", string(hash), "System Administrator", "admin@hadiyatransport.gov.et", "super_admin")
	if err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}
	return nil
}

// seedSampleContent inserts one example row per public entity so a
// fresh install has something to show
func seedSampleContent(ctx context.Context, db *sqlx.DB) error {
	var leaders int
	if err := db.GetContext(ctx, &leaders, `SELECT COUNT(*) FROM leaders`); err != nil {
		return err
	}
	if leaders == 0 {
		_, err := db.ExecContext(ctx,
			`INSERT INTO leaders (name, title_en, title_am, description_en, description_am, display_order)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			"Ato Gediyon", "Bureau Head", "የቢሮ ኃላፊ",
			"Experienced leader in transport sector.", "በትራንስፖርት ዘርፍ ልምድ ያለው መሪ።", 1)
		if err != nil {
			return fmt.Errorf("failed to seed sample leader: %w", err)
		}
	}

	var services int
	if err := db.GetContext(ctx, &services, `SELECT COUNT(*) FROM services`); err != nil {
		return err
	}
	if services == 0 {
		_, err := db.ExecContext(ctx,
			`INSERT INTO services (title_en, title_am, description_en, description_am, icon)
			 VALUES ($1, $2, $3, $4, $5)`,
			"Public Transport", "የህዝብ ትራንስፖርት",
			"Reliable and efficient public transport services.", "አስተማማኝ እና ቀልጣፋ የህዝብ ትራንስፖርት አገልግሎት።", "fa-bus")
		if err != nil {
			return fmt.Errorf("failed to seed sample service: %w", err)
		}
	}

	var news int
	if err := db.GetContext(ctx, &news, `SELECT COUNT(*) FROM news`); err != nil {
		return err
	}
	if news == 0 {
		_, err := db.ExecContext(ctx,
			`INSERT INTO news (title_en, title_am, description_en, description_am, category_en, category_am, created_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			"Welcome to New Website", "አዲሱ ድረ-ገጻችንን እንኳን ደህና መጡ",
			"We are excited to launch our new digital platform.", "አዲሱን ዲጂታል መድረካችንን በማስጀመር ደስተኞች ነን።",
			"Announcement", "ማስታወቂያ", "system")
		if err != nil {
			return fmt.Errorf("failed to seed sample news: %w", err)
		}
	}

	return nil
}
