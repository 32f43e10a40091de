package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signTestToken builds a signed HS256 token with the given claims.
// The signature key does not matter: the functions under test parse
// without verification, like the agent does with plant-issued tokens.
func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("unit-test-key"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func TestParseTokenExpiry_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed := signTestToken(t, jwt.MapClaims{
		"sub": "EMP-0042",
		"exp": exp.Unix(),
	})

	got, err := ParseTokenExpiry(signed)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("expected expiry %v, got %v", exp, got)
	}
}

func TestParseTokenExpiry_NoExpClaim(t *testing.T) {
	signed := signTestToken(t, jwt.MapClaims{"sub": "EMP-0042"})

	got, err := ParseTokenExpiry(signed)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected zero time for missing exp, got %v", got)
	}
}

func TestParseTokenExpiry_Malformed(t *testing.T) {
	_, err := ParseTokenExpiry("not.a.token")
	if err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestParseEmployeeIDFromJWT_Success(t *testing.T) {
	signed := signTestToken(t, jwt.MapClaims{"sub": "EMP-0042"})

	got, err := ParseEmployeeIDFromJWT(signed)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != "EMP-0042" {
		t.Errorf("expected EMP-0042, got %s", got)
	}
}

func TestParseEmployeeIDFromJWT_EmptySubject(t *testing.T) {
	signed := signTestToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})

	_, err := ParseEmployeeIDFromJWT(signed)

	if err == nil {
		t.Error("expected error for empty subject, got nil")
	}
}

func TestParseEmployeeIDFromJWT_Malformed(t *testing.T) {
	_, err := ParseEmployeeIDFromJWT("garbage")
	if err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"outer whitespace trimmed", "  Bearer abc  ", "abc", false},
		{"missing token", "Bearer ", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
