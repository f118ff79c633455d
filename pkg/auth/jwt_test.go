package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	token, err := jwtService.GenerateJWT(3423432, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(3423432), claims.CustomerID)
	assert.Equal(t, "pointpay", claims.Issuer)
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	tests := []struct {
		name        string
		setup       func() string
		expectError error
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name: "Invalid Token",
			setup: func() string {
				return "invalid.token.string"
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, time.Now().Add(-time.Hour))
				return token
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Foreign Secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret").GenerateJWT(123, time.Now().Add(time.Hour))
				return token
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Missing Customer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    "pointpay",
				})
				signedToken, _ := token.SignedString([]byte("test-secret"))
				return signedToken
			},
			expectError: ErrInvalidClaims,
		},
		{
			name: "Foreign Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					CustomerID: 123,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "accrual",
					},
				})
				signedToken, _ := token.SignedString([]byte("test-secret"))
				return signedToken
			},
			expectError: ErrInvalidClaims,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.setup())

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}
