package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+dataSourceName+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT NOT NULL PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS credentials (
		account_id TEXT NOT NULL PRIMARY KEY,
		secret TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS events (
		id TEXT NOT NULL PRIMARY KEY,
		type TEXT NOT NULL,
		level TEXT NOT NULL,
		message TEXT NOT NULL,
		actor TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS specialties (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		icon TEXT,
		position INTEGER
	);

	CREATE TABLE IF NOT EXISTS doctors (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT,
		-- Store list fields as JSON text
		specialties_json TEXT,
		accepting_new_patients INTEGER,
		phone_number TEXT
	);

	CREATE TABLE IF NOT EXISTS hospitals (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT,
		specialties_json TEXT,
		phone_number TEXT,
		capacity INTEGER
	);

	CREATE TABLE IF NOT EXISTS pharmacies (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT,
		specialties_json TEXT,
		phone_number TEXT,
		plans_accepted INTEGER
	);

	CREATE TABLE IF NOT EXISTS urgent_care_centers (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT,
		services_json TEXT,
		phone_number TEXT,
		wait_time TEXT
	);

	CREATE TABLE IF NOT EXISTS cardiology_clinics (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT,
		services_json TEXT,
		phone_number TEXT,
		years_in_practice INTEGER
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
