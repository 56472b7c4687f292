package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

func RunMigrations(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    email TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    last_login TIMESTAMPTZ,
    is_active BOOLEAN NOT NULL DEFAULT true
);

CREATE TABLE IF NOT EXISTS profiles (
    id SERIAL PRIMARY KEY,
    user_id INTEGER UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    age INTEGER NOT NULL DEFAULT 0,
    gender TEXT NOT NULL DEFAULT '',
    height DOUBLE PRECISION NOT NULL DEFAULT 0,
    weight DOUBLE PRECISION NOT NULL DEFAULT 0,
    goal_weight DOUBLE PRECISION NOT NULL DEFAULT 0,
    goal TEXT NOT NULL DEFAULT '',
    experience TEXT NOT NULL DEFAULT '',
    activity_level TEXT NOT NULL DEFAULT '',
    diet_preference TEXT NOT NULL DEFAULT '',
    bmi DOUBLE PRECISION NOT NULL DEFAULT 0,
    bmr DOUBLE PRECISION NOT NULL DEFAULT 0,
    tdee DOUBLE PRECISION NOT NULL DEFAULT 0,
    profile_complete BOOLEAN NOT NULL DEFAULT false,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS progress (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    date DATE NOT NULL,
    weight DOUBLE PRECISION NOT NULL,
    body_fat DOUBLE PRECISION,
    waist DOUBLE PRECISION,
    chest DOUBLE PRECISION,
    arms DOUBLE PRECISION,
    notes TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_progress_user_date ON progress (user_id, date DESC);

-- Uniqueness ignores case, matching the lookup queries.
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower ON users (LOWER(username));
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (LOWER(email));
`
	_, err := db.ExecContext(context.Background(), schema)
	return err
}
