package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := &JWTService{}

	token, err := svc.GenerateJWT(42, time.Now().Add(15*time.Minute))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateToken_Invalid(t *testing.T) {
	svc := &JWTService{}

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "garbage token",
			token: func() string { return "not.a.token" },
		},
		{
			name: "expired token",
			token: func() string {
				token, _ := svc.GenerateJWT(42, time.Now().Add(-time.Minute))
				return token
			},
		},
		{
			name: "zero user id",
			token: func() string {
				token, _ := svc.GenerateJWT(0, time.Now().Add(15*time.Minute))
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token())
			assert.Error(t, err)
		})
	}
}
