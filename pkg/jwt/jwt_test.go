package jwt

import (
	"testing"
	"time"

	"dental-clinic-api/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	userID := uuid.New()
	patientID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "pat@example.com", 2, &patientID)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "pat@example.com", claims.Email)
	assert.Equal(t, 2, claims.RoleID)
	assert.Equal(t, patientID, *claims.PatientID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "staff@example.com", 1, nil)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
	assert.Nil(t, claims.PatientID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := testService()
	token, _, err := svc.GenerateAccessToken(uuid.New(), "pat@example.com", 2, nil)
	assert.NoError(t, err)

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute, RefreshExpiry: time.Minute})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := testService()
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
