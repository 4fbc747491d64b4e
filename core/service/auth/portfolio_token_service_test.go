package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssue_PasswordCheck(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		supplied   string
		wantErr    bool
	}{
		{"correct password", "secret", "secret", false},
		{"wrong password", "secret", "nope", true},
		{"empty supplied", "secret", "", true},
		{"unconfigured password denies everything", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := NewTokenIssuer("signing-secret", tt.configured)

			token, err := issuer.Issue(tt.supplied)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Issue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrAccessDenied) {
					t.Errorf("Issue() error = %v, want ErrAccessDenied", err)
				}
				return
			}
			if token == "" {
				t.Error("Issue() returned an empty token")
			}
		})
	}
}

func TestIssue_Claims(t *testing.T) {
	issuer := NewTokenIssuer("signing-secret", "secret")

	tokenString, err := issuer.Issue("secret")
	if err != nil {
		t.Fatal(err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("signing-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("issued token claims are not MapClaims")
	}

	if got, _ := claims["tokenPassword"].(string); got != "secret" {
		t.Errorf("tokenPassword claim = %q, want %q", got, "secret")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatal(err)
	}
	ttl := time.Until(exp.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("token ttl = %v, want about 24h", ttl)
	}
}
