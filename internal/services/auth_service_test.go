package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"starlitsips/internal/services"
)

func TestAuthService_Login(t *testing.T) {
	service, err := services.NewAuthService("admin2024", "test_jwt_secret")
	assert.NoError(t, err)

	// Correct password yields a token
	token, err := service.Login("admin2024")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Wrong password is denied
	token, err = service.Login("admin123")
	assert.Error(t, err)
	assert.Empty(t, token)

	// Empty password is denied
	token, err = service.Login("")
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestAuthService_ValidateToken(t *testing.T) {
	service, err := services.NewAuthService("admin2024", "test_jwt_secret")
	assert.NoError(t, err)

	token, err := service.Login("admin2024")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])

	// Garbage tokens are rejected
	_, err = service.ValidateToken("not.a.token")
	assert.Error(t, err)

	// Tokens signed with a different secret are rejected
	other, err := services.NewAuthService("admin2024", "another_secret")
	assert.NoError(t, err)
	foreignToken, err := other.Login("admin2024")
	assert.NoError(t, err)
	_, err = service.ValidateToken(foreignToken)
	assert.Error(t, err)
}
