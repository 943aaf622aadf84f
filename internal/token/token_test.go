package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	v := NewVerifier("test-secret", time.Hour)

	raw, err := v.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if raw == "" {
		t.Fatal("expected non-empty token")
	}

	id, err := v.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.UserID != 42 {
		t.Errorf("UserID = %d, want 42", id.UserID)
	}
}

func TestVerifyEmpty(t *testing.T) {
	v := NewVerifier("test-secret", time.Hour)

	_, err := v.Verify("")
	if !errors.Is(err, ErrMissing) {
		t.Errorf("err = %v, want ErrMissing", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	v := NewVerifier("test-secret", time.Hour)

	_, err := v.Verify("not-a-jwt")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	v1 := NewVerifier("secret-one", time.Hour)
	v2 := NewVerifier("secret-two", time.Hour)

	raw, err := v1.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = v2.Verify(raw)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	v := NewVerifier("test-secret", -time.Minute)

	raw, err := v.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = v.Verify(raw)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}
