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
		password_hash TEXT NOT NULL,
		is_email_verified BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		title TEXT,
		bio TEXT,
		company TEXT,
		competencies TEXT,
		languages TEXT,
		roles TEXT,
		linked_in_url TEXT,
		booking_url TEXT,
		profile_image_url TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createReviewTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE consultant_reviews (
		id TEXT PRIMARY KEY,
		consultant_id TEXT NOT NULL,
		client_name TEXT NOT NULL,
		client_role TEXT NOT NULL,
		client_company TEXT NOT NULL,
		review_text TEXT NOT NULL,
		rating INTEGER NOT NULL,
		client_image_url TEXT,
		created_at DATETIME
	);`)
}

func createMissionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE consultant_missions (
		id TEXT PRIMARY KEY,
		consultant_id TEXT NOT NULL,
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		description TEXT NOT NULL,
		duration TEXT NOT NULL,
		date TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSparkTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE sparks (
		id TEXT PRIMARY KEY,
		consultant_id TEXT NOT NULL,
		title TEXT NOT NULL,
		url TEXT UNIQUE NOT NULL,
		highlight TEXT,
		description TEXT NOT NULL,
		duration TEXT NOT NULL,
		price TEXT,
		benefits TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createClientTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE clients (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		company_name TEXT NOT NULL,
		industry TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
