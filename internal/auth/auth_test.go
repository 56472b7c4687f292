package auth

import (
	"context"
	"testing"

	"fitmitra/internal/store"
)

func newManager(t *testing.T) (*Manager, *store.File) {
	t.Helper()
	s, err := store.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return NewManager(s), s
}

func TestRegisterValidationShortCircuits(t *testing.T) {
	t.Parallel()
	m, _ := newManager(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		email    string
		password string
		wantMsg  string
	}{
		{"short username", "ab", "a@b.com", "secret12", "Username must be at least 3 characters"},
		{"long username", "abcdefghijklmnopqrstu", "a@b.com", "secret12", "Username must be less than 20 characters"},
		{"bad characters", "user name", "a@b.com", "secret12", "Username can only contain letters, numbers, and underscores"},
		{"empty username", "", "a@b.com", "secret12", "Username is required"},
		{"bad email", "user1", "not-an-email", "secret12", "Invalid email format"},
		{"short password", "user1", "a@b.com", "short1", "Password must be at least 8 characters"},
		{"no letter", "user1", "a@b.com", "12345678", "Password must contain at least one letter"},
		{"no digit", "user1", "a@b.com", "abcdefgh", "Password must contain at least one number"},
	}
	for _, c := range cases {
		res, err := m.Register(ctx, c.username, c.email, c.password)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if res.OK {
			t.Fatalf("%s: registration should fail", c.name)
		}
		if res.Message != c.wantMsg {
			t.Fatalf("%s: message = %q, want %q", c.name, res.Message, c.wantMsg)
		}
	}
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	m, _ := newManager(t)
	ctx := context.Background()

	res, err := m.Register(ctx, "asha_k", "asha@example.com", "secret12")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !res.OK || res.User == nil {
		t.Fatalf("registration failed: %+v", res)
	}
	if res.User.PasswordHash != "" {
		t.Fatalf("password hash leaked in result")
	}

	// Login by username.
	res, err = m.Login(ctx, "asha_k", "secret12")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !res.OK {
		t.Fatalf("login by username failed: %+v", res)
	}
	if res.User.PasswordHash != "" {
		t.Fatalf("password hash leaked in result")
	}
	if res.User.LastLogin == nil {
		t.Fatalf("last login not updated")
	}

	// Login by email.
	res, err = m.Login(ctx, "asha@example.com", "secret12")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !res.OK {
		t.Fatalf("login by email failed: %+v", res)
	}
}

func TestRegisterDuplicatesPerformNoWrite(t *testing.T) {
	t.Parallel()
	m, s := newManager(t)
	ctx := context.Background()

	if res, _ := m.Register(ctx, "asha_k", "asha@example.com", "secret12"); !res.OK {
		t.Fatalf("seed registration failed: %+v", res)
	}

	res, err := m.Register(ctx, "asha_k", "other@example.com", "secret12")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.OK || res.Message != "Username already exists" {
		t.Fatalf("duplicate username: %+v", res)
	}

	res, err = m.Register(ctx, "other", "asha@example.com", "secret12")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if res.OK || res.Message != "Email already registered" {
		t.Fatalf("duplicate email: %+v", res)
	}

	// Nothing was written for either attempt.
	if _, err := s.UserByUsername(ctx, "other"); err != store.ErrNotFound {
		t.Fatalf("failed registration wrote a user")
	}
	if _, err := s.UserByEmail(ctx, "other@example.com"); err != store.ErrNotFound {
		t.Fatalf("failed registration wrote a user")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()
	m, _ := newManager(t)
	ctx := context.Background()

	if res, _ := m.Register(ctx, "asha_k", "asha@example.com", "secret12"); !res.OK {
		t.Fatalf("seed registration failed: %+v", res)
	}

	wrongPassword, err := m.Login(ctx, "asha_k", "wrongpass1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	unknownUser, err := m.Login(ctx, "nobody", "secret12")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if wrongPassword.OK || unknownUser.OK {
		t.Fatalf("both logins should fail")
	}
	if wrongPassword.Message != unknownUser.Message {
		t.Fatalf("failure messages differ: %q vs %q", wrongPassword.Message, unknownUser.Message)
	}
	if wrongPassword.Message != "Invalid credentials" {
		t.Fatalf("message = %q, want Invalid credentials", wrongPassword.Message)
	}
}

func TestLoginRequiresInput(t *testing.T) {
	t.Parallel()
	m, _ := newManager(t)
	res, err := m.Login(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.OK || res.Message != "Username/email and password are required" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
