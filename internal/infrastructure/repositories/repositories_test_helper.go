package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT,
		role TEXT NOT NULL,
		phone TEXT,
		skills TEXT,
		availability TEXT,
		is_email_verified BOOLEAN,
		verification_token TEXT,
		reset_token TEXT,
		last_active_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCampaignTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE campaigns (
		id TEXT PRIMARY KEY,
		creator_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		goal INTEGER NOT NULL,
		raised INTEGER NOT NULL DEFAULT 0,
		currency TEXT NOT NULL,
		category TEXT NOT NULL,
		status TEXT NOT NULL,
		image_url TEXT,
		start_date DATETIME,
		end_date DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE campaign_updates (
		id TEXT PRIMARY KEY,
		campaign_id TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createDonationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE donations (
		id TEXT PRIMARY KEY,
		donor_id TEXT NOT NULL,
		campaign_id TEXT,
		amount INTEGER NOT NULL,
		currency TEXT NOT NULL,
		order_id TEXT UNIQUE NOT NULL,
		payment_id TEXT,
		signature TEXT,
		receipt_number TEXT UNIQUE,
		refund_id TEXT,
		status TEXT NOT NULL,
		is_anonymous BOOLEAN,
		message TEXT,
		completed_at DATETIME,
		refunded_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE subscriptions (
		id TEXT PRIMARY KEY,
		donor_id TEXT NOT NULL,
		amount INTEGER NOT NULL,
		currency TEXT NOT NULL,
		frequency TEXT NOT NULL,
		gateway_subscription_id TEXT UNIQUE NOT NULL,
		authorization_url TEXT,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createEventTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		location TEXT NOT NULL,
		date DATETIME NOT NULL,
		end_date DATETIME NOT NULL,
		max_attendees INTEGER NOT NULL DEFAULT 0,
		current_attendees INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE attendees (
		id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		status TEXT NOT NULL,
		registered_at DATETIME,
		UNIQUE(event_id, user_id)
	);`)
}

func createVolunteerTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE volunteers (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		application_status TEXT NOT NULL,
		skills TEXT NOT NULL,
		availability TEXT NOT NULL,
		motivation TEXT NOT NULL,
		emergency_name TEXT NOT NULL,
		emergency_relationship TEXT NOT NULL,
		emergency_phone TEXT NOT NULL,
		total_hours REAL NOT NULL DEFAULT 0,
		rating REAL NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE assignments (
		id TEXT PRIMARY KEY,
		volunteer_id TEXT NOT NULL,
		role TEXT NOT NULL,
		start_date DATETIME NOT NULL,
		end_date DATETIME,
		status TEXT NOT NULL,
		hours_logged REAL NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE volunteer_reviews (
		id TEXT PRIMARY KEY,
		volunteer_id TEXT NOT NULL,
		reviewer_id TEXT NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT,
		created_at DATETIME
	);`)
}

func createContactTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE contacts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL,
		priority TEXT NOT NULL,
		response TEXT,
		responded_by TEXT,
		responded_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createBlogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE blog_posts (
		id TEXT PRIMARY KEY,
		author_id TEXT NOT NULL,
		title TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		content TEXT NOT NULL,
		tags TEXT,
		published BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createNotificationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		author_id TEXT NOT NULL,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		audience TEXT NOT NULL,
		status TEXT NOT NULL,
		sent_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE file_assets (
		id TEXT PRIMARY KEY,
		url TEXT NOT NULL,
		public_id TEXT NOT NULL,
		bytes INTEGER NOT NULL DEFAULT 0,
		format TEXT,
		folder TEXT,
		uploaded_by TEXT NOT NULL,
		created_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE settings (
		id INTEGER PRIMARY KEY,
		document TEXT NOT NULL,
		updated_at DATETIME
	);`)
}
