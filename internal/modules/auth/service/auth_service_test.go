package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"skillbridge/internal/modules/auth/service"
	"skillbridge/internal/platform/clock"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var _ clock.Clock = fixedClock{}

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestTokenUsable(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := service.NewAuthService(fixedClock{now: now})

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"opaque token", "session-abc123", true},
		{"jwt without exp", token(t, jwt.MapClaims{"sub": "1"}), true},
		{"jwt expiring later", token(t, jwt.MapClaims{"exp": now.Add(time.Minute).Unix()}), true},
		{"jwt already expired", token(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()}), false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := svc.TokenUsable(tc.token); got != tc.want {
				t.Fatalf("TokenUsable(%q) = %t, want %t", tc.token, got, tc.want)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()
	svc := service.NewAuthService(clock.SystemClock{})
	if err := svc.ValidateLogin("a@b.c", "pw"); err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	if err := svc.ValidateLogin("", "pw"); err == nil {
		t.Fatal("empty email must be rejected")
	}
	if err := svc.ValidateLogin("a@b.c", ""); err == nil {
		t.Fatal("empty password must be rejected")
	}
}
