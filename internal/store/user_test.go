package store

import (
	"testing"
)

func TestUserCreateAndGet(t *testing.T) {
	_, us := setupTestDB(t)

	u, err := us.Create("alice@example.com", "bcrypt-hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email = %q, want %q", u.Email, "alice@example.com")
	}
	if u.PasswordHash != "bcrypt-hash" {
		t.Errorf("password_hash = %q, want %q", u.PasswordHash, "bcrypt-hash")
	}

	got, err := us.GetByID(u.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got == nil || got.Email != u.Email {
		t.Errorf("got = %+v, want email %q", got, u.Email)
	}
}

func TestUserGetByEmail(t *testing.T) {
	_, us := setupTestDB(t)

	u, _ := us.Create("bob@example.com", "hash")

	got, err := us.GetByEmail("bob@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got == nil || got.ID != u.ID {
		t.Errorf("got = %+v, want id %d", got, u.ID)
	}
}

func TestUserGetByEmailMissing(t *testing.T) {
	_, us := setupTestDB(t)

	got, err := us.GetByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unknown email")
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	_, us := setupTestDB(t)

	if _, err := us.Create("dup@example.com", "hash"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := us.Create("dup@example.com", "other"); err == nil {
		t.Error("expected unique constraint error for duplicate email")
	}
}
