// Package auth implements registration and login over a UserStore.
package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"fitmitra/internal/models"
	"fitmitra/internal/store"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	hasLetter       = regexp.MustCompile(`[A-Za-z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
)

type Manager struct {
	users store.UserStore
}

func NewManager(users store.UserStore) *Manager {
	return &Manager{users: users}
}

// Result carries the outcome of a register or login call. Validation and
// authentication failures are values, not errors; Err is set only for
// storage faults.
type Result struct {
	OK      bool
	Message string
	User    *models.User
}

func ValidateUsername(username string) (bool, string) {
	if username == "" {
		return false, "Username is required"
	}
	if len(username) < 3 {
		return false, "Username must be at least 3 characters"
	}
	if len(username) > 20 {
		return false, "Username must be less than 20 characters"
	}
	if !usernamePattern.MatchString(username) {
		return false, "Username can only contain letters, numbers, and underscores"
	}
	return true, ""
}

func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return false, "Email is required"
	}
	if !emailPattern.MatchString(email) {
		return false, "Invalid email format"
	}
	return true, ""
}

func ValidatePassword(password string) (bool, string) {
	if password == "" {
		return false, "Password is required"
	}
	if len(password) < minPasswordLength {
		return false, fmt.Sprintf("Password must be at least %d characters", minPasswordLength)
	}
	if !hasLetter.MatchString(password) {
		return false, "Password must contain at least one letter"
	}
	if !hasDigit.MatchString(password) {
		return false, "Password must contain at least one number"
	}
	return true, ""
}

// Register validates input, checks uniqueness and creates the account.
// Validation short-circuits on the first violated rule, and no write happens
// on any failure path.
func (m *Manager) Register(ctx context.Context, username, email, password string) (Result, error) {
	if ok, msg := ValidateUsername(username); !ok {
		return Result{Message: msg}, nil
	}
	if ok, msg := ValidateEmail(email); !ok {
		return Result{Message: msg}, nil
	}
	if ok, msg := ValidatePassword(password); !ok {
		return Result{Message: msg}, nil
	}

	if _, err := m.users.UserByUsername(ctx, username); err == nil {
		return Result{Message: "Username already exists"}, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return Result{}, err
	}
	if _, err := m.users.UserByEmail(ctx, email); err == nil {
		return Result{Message: "Email already registered"}, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return Result{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return Result{}, fmt.Errorf("hash password: %w", err)
	}

	id, err := m.users.CreateUser(ctx, username, email, string(hash))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return Result{Message: "Username already exists"}, nil
		}
		return Result{}, err
	}

	user, err := m.users.UserByID(ctx, id)
	if err != nil {
		return Result{}, err
	}
	user.PasswordHash = ""
	return Result{OK: true, Message: "Registration successful", User: user}, nil
}

// Login authenticates by username, falling back to email. Unknown
// identifiers and wrong passwords produce the identical message so the two
// cannot be told apart.
func (m *Manager) Login(ctx context.Context, identifier, password string) (Result, error) {
	if identifier == "" || password == "" {
		return Result{Message: "Username/email and password are required"}, nil
	}

	user, err := m.users.UserByUsername(ctx, identifier)
	if errors.Is(err, store.ErrNotFound) {
		user, err = m.users.UserByEmail(ctx, identifier)
	}
	if errors.Is(err, store.ErrNotFound) {
		return Result{Message: "Invalid credentials"}, nil
	}
	if err != nil {
		return Result{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Result{Message: "Invalid credentials"}, nil
	}
	if !user.IsActive {
		return Result{Message: "Account is disabled"}, nil
	}

	if err := m.users.TouchLastLogin(ctx, user.ID); err != nil {
		return Result{}, err
	}

	user.PasswordHash = ""
	return Result{OK: true, Message: "Login successful", User: user}, nil
}
