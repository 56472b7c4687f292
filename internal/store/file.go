package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"fitmitra/internal/models"
)

// File is the flat-file backend: per-user JSON documents under a data
// directory, honoring the same read/write contract as Postgres.
//
//	{user_id}_profile.json   single profile document
//	{user_id}_progress.json  JSON array, appended to over time
//	users.json               account index for register/login
type File struct {
	dir string
	mu  sync.Mutex
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (s *File) profilePath(userID int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d_profile.json", userID))
}

func (s *File) progressPath(userID int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d_progress.json", userID))
}

func (s *File) usersPath() string {
	return filepath.Join(s.dir, "users.json")
}

func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *File) loadUsers() ([]models.User, error) {
	var users []models.User
	if _, err := readJSON(s.usersPath(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *File) CreateUser(_ context.Context, username, email, passwordHash string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.loadUsers()
	if err != nil {
		return 0, err
	}
	maxID := 0
	for _, u := range users {
		if strings.EqualFold(u.Username, username) || strings.EqualFold(u.Email, email) {
			return 0, ErrDuplicate
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	user := models.User{
		ID:           maxID + 1,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}
	users = append(users, user)
	if err := writeJSON(s.usersPath(), users); err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *File) findUser(match func(models.User) bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if match(users[i]) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *File) UserByUsername(_ context.Context, username string) (*models.User, error) {
	return s.findUser(func(u models.User) bool { return strings.EqualFold(u.Username, username) })
}

func (s *File) UserByEmail(_ context.Context, email string) (*models.User, error) {
	return s.findUser(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (s *File) UserByID(_ context.Context, id int) (*models.User, error) {
	return s.findUser(func(u models.User) bool { return u.ID == id })
}

func (s *File) TouchLastLogin(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := s.loadUsers()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			now := time.Now().UTC()
			users[i].LastLogin = &now
			return writeJSON(s.usersPath(), users)
		}
	}
	return ErrNotFound
}

func (s *File) SaveProfile(_ context.Context, p *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = p.UserID
	}
	p.UpdatedAt = time.Now().UTC()
	return writeJSON(s.profilePath(p.UserID), p)
}

func (s *File) Profile(_ context.Context, userID int) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var p models.Profile
	ok, err := readJSON(s.profilePath(userID), &p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *File) AppendProgress(_ context.Context, e *models.ProgressEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var entries []models.ProgressEntry
	if _, err := readJSON(s.progressPath(e.UserID), &entries); err != nil {
		return err
	}
	e.ID = len(entries) + 1
	e.CreatedAt = time.Now().UTC()
	entries = append(entries, *e)
	return writeJSON(s.progressPath(e.UserID), entries)
}

func (s *File) ProgressHistory(_ context.Context, userID int) ([]models.ProgressEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var entries []models.ProgressEntry
	if _, err := readJSON(s.progressPath(userID), &entries); err != nil {
		return nil, err
	}
	// Newest first, matching the relational store.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].ID > entries[j].ID
	})
	return entries, nil
}
