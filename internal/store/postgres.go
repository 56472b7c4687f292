package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"fitmitra/internal/models"
)

// Postgres implements Store over the relational schema.
type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

const userColumns = `id, username, email, password_hash, created_at, last_login, is_active`

func (s *Postgres) CreateUser(ctx context.Context, username, email, passwordHash string) (int, error) {
	var id int
	err := s.db.QueryRowxContext(ctx,
		`INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id`,
		username, email, passwordHash).Scan(&id)
	if err != nil {
		// 23505 = unique_violation
		if strings.Contains(err.Error(), "23505") || strings.Contains(err.Error(), "duplicate key") {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return id, nil
}

func (s *Postgres) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	// Case-insensitive, matching the flat-file backend.
	err := s.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE LOWER(username)=LOWER($1)`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Postgres) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE LOWER(email)=LOWER($1)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Postgres) UserByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := s.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Postgres) TouchLastLogin(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx, `UPDATE users SET last_login = NOW() WHERE id=$1`, id)
	return err
}

func (s *Postgres) SaveProfile(ctx context.Context, p *models.Profile) error {
	return s.db.QueryRowxContext(ctx, `
		INSERT INTO profiles (user_id, name, age, gender, height, weight, goal_weight,
		                      goal, experience, activity_level, diet_preference,
		                      bmi, bmr, tdee, profile_complete, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
		    name = EXCLUDED.name,
		    age = EXCLUDED.age,
		    gender = EXCLUDED.gender,
		    height = EXCLUDED.height,
		    weight = EXCLUDED.weight,
		    goal_weight = EXCLUDED.goal_weight,
		    goal = EXCLUDED.goal,
		    experience = EXCLUDED.experience,
		    activity_level = EXCLUDED.activity_level,
		    diet_preference = EXCLUDED.diet_preference,
		    bmi = EXCLUDED.bmi,
		    bmr = EXCLUDED.bmr,
		    tdee = EXCLUDED.tdee,
		    profile_complete = EXCLUDED.profile_complete,
		    updated_at = NOW()
		RETURNING id, updated_at`,
		p.UserID, p.Name, p.Age, p.Gender, p.Height, p.Weight, p.GoalWeight,
		p.Goal, p.Experience, p.ActivityLevel, p.DietPreference,
		p.BMI, p.BMR, p.TDEE, p.ProfileComplete).Scan(&p.ID, &p.UpdatedAt)
}

func (s *Postgres) Profile(ctx context.Context, userID int) (*models.Profile, error) {
	var p models.Profile
	err := s.db.GetContext(ctx, &p, `
		SELECT id, user_id, name, age, gender, height, weight, goal_weight,
		       goal, experience, activity_level, diet_preference,
		       bmi, bmr, tdee, profile_complete, updated_at
		FROM profiles WHERE user_id=$1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Postgres) AppendProgress(ctx context.Context, e *models.ProgressEntry) error {
	return s.db.QueryRowxContext(ctx, `
		INSERT INTO progress (user_id, date, weight, body_fat, waist, chest, arms, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		e.UserID, e.Date, e.Weight, e.BodyFat, e.Waist, e.Chest, e.Arms, e.Notes).
		Scan(&e.ID, &e.CreatedAt)
}

func (s *Postgres) ProgressHistory(ctx context.Context, userID int) ([]models.ProgressEntry, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD') AS date, weight,
		       body_fat, waist, chest, arms, notes, created_at
		FROM progress WHERE user_id=$1 ORDER BY date DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.ProgressEntry
	for rows.Next() {
		var e models.ProgressEntry
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
