package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestIssueAndValidate_Success(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", time.Hour, zap.NewNop())
	userID := uuid.New()

	tok, expiresAt, err := svc.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if until := time.Until(expiresAt); until < 59*time.Minute || until > time.Hour {
		t.Fatalf("unexpected expiry: %v", expiresAt)
	}

	gotUserID, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	svc := NewService("secret", -1*time.Second, zap.NewNop())

	tok, _, err := svc.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = svc.Validate(tok)
	if err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewService("right-secret", time.Hour, zap.NewNop())
	verifier := NewService("wrong-secret", time.Hour, zap.NewNop())

	tok, _, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = verifier.Validate(tok)
	if err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidate_MalformedString(t *testing.T) {
	t.Parallel()

	svc := NewService("k", time.Hour, zap.NewNop())

	_, err := svc.Validate("not.a.jwt")
	if err != ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestNewService_FallbackSecret(t *testing.T) {
	t.Parallel()

	// Empty secret falls back to the development key and still works
	svc := NewService("", time.Hour, zap.NewNop())
	userID := uuid.New()

	tok, _, err := svc.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	gotUserID, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}
