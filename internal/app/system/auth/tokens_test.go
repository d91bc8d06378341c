package auth_test

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/notekeep/notekeep/internal/app/system/auth"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := auth.NewTokenService("test-secret")

	token, err := svc.Issue("123456789012345678")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("Issue returned empty token")
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if got != "123456789012345678" {
		t.Errorf("Verify: got %q, want %q", got, "123456789012345678")
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := auth.NewTokenService("secret-a").Issue("123456789012345678")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := auth.NewTokenService("secret-b").Verify(token); err != auth.ErrInvalidToken {
		t.Errorf("Verify with wrong secret: got %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := auth.NewTokenService("test-secret")
	for _, tok := range []string{"", "garbage", "a.b.c", "header.payload"} {
		if _, err := svc.Verify(tok); err != auth.ErrInvalidToken {
			t.Errorf("Verify(%q): got %v, want ErrInvalidToken", tok, err)
		}
	}
}

func TestTokenService_Tampered(t *testing.T) {
	svc := auth.NewTokenService("test-secret")
	token, err := svc.Issue("123456789012345678")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected a three-part JWT, got %d parts", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := svc.Verify(tampered); err != auth.ErrInvalidToken {
		t.Errorf("Verify of tampered token: got %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_MissingClaim(t *testing.T) {
	// A structurally valid token signed with the right secret but
	// without a discord_user_id claim must still be rejected.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "someone"})
	signed, err := raw.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	svc := auth.NewTokenService("test-secret")
	if _, err := svc.Verify(signed); err != auth.ErrInvalidToken {
		t.Errorf("Verify without claim: got %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_WrongAlgorithmRejected(t *testing.T) {
	// alg=none tokens must not verify even though the payload parses.
	raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"discord_user_id": "123456789012345678"})
	signed, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	svc := auth.NewTokenService("test-secret")
	if _, err := svc.Verify(signed); err != auth.ErrInvalidToken {
		t.Errorf("Verify of alg=none token: got %v, want ErrInvalidToken", err)
	}
}

func TestTokenService_NoExpiry(t *testing.T) {
	// Tokens are issued without exp on purpose; claims must not carry one.
	svc := auth.NewTokenService("test-secret")
	token, err := svc.Issue("123456789012345678")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims := &auth.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Errorf("token carries exp=%v; expiry must not be added silently", claims.ExpiresAt)
	}
}
