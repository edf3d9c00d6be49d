package auth

import (
	"strings"
	"testing"
	"time"
)

func TestTokenManager_IssueAndValidate(t *testing.T) {
	config := TokenConfig{
		SecretKey: "test-secret-key",
		TokenTTL:  30 * time.Minute,
		Issuer:    "test-issuer",
	}
	manager := NewTokenManager(config)

	username := "alice"

	token, err := manager.Issue(username)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Error("Issue() returned empty token")
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if claims.Username != username {
		t.Errorf("claims.Username = %v, want %v", claims.Username, username)
	}
	if claims.Subject != username {
		t.Errorf("claims.Subject = %v, want %v", claims.Subject, username)
	}
	if claims.Issuer != config.Issuer {
		t.Errorf("claims.Issuer = %v, want %v", claims.Issuer, config.Issuer)
	}
	if claims.ID == "" {
		t.Error("claims.ID is empty, want a token id")
	}

	wantExpiry := time.Now().Add(config.TokenTTL)
	if got := claims.ExpiresAt.Time; got.Before(wantExpiry.Add(-time.Minute)) || got.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("claims.ExpiresAt = %v, want about %v", got, wantExpiry)
	}
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	config := TokenConfig{
		SecretKey: "test-secret-key",
		TokenTTL:  -1 * time.Minute, // already expired at issue time
		Issuer:    "test-issuer",
	}
	manager := NewTokenManager(config)

	token, err := manager.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = manager.Validate(token)
	if err != ErrExpiredToken {
		t.Errorf("Validate() error = %v, want ErrExpiredToken", err)
	}
}

func TestTokenManager_TamperedToken(t *testing.T) {
	manager := NewTokenManager(TokenConfig{
		SecretKey: "test-secret-key",
		TokenTTL:  30 * time.Minute,
		Issuer:    "test-issuer",
	})

	token, err := manager.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Flip part of the claims segment; the signature must stop verifying.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	tampered := parts[0] + "." + parts[1][:len(parts[1])-2] + "xx" + "." + parts[2]

	if _, err := manager.Validate(tampered); err != ErrInvalidToken {
		t.Errorf("Validate(tampered) error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager(TokenConfig{
		SecretKey: "secret-a",
		TokenTTL:  30 * time.Minute,
		Issuer:    "test-issuer",
	})
	verifier := NewTokenManager(TokenConfig{
		SecretKey: "secret-b",
		TokenTTL:  30 * time.Minute,
		Issuer:    "test-issuer",
	})

	token, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Validate(token); err != ErrInvalidToken {
		t.Errorf("Validate() with wrong secret error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenManager_MalformedToken(t *testing.T) {
	manager := NewTokenManager(DefaultTokenConfig())

	for _, malformed := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := manager.Validate(malformed); err != ErrInvalidToken {
			t.Errorf("Validate(%q) error = %v, want ErrInvalidToken", malformed, err)
		}
	}
}
