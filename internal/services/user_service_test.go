package services

import (
	"context"
	"testing"

	"github.com/Aidos2284/Wish_Fund/internal/models"
	"github.com/Aidos2284/Wish_Fund/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUserHashesPassword(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	created, err := svc.RegisterUser(context.Background(), RegisterInput{
		Username: "dias",
		Email:    "dias@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", created.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.HashedPassword), []byte("secret123")))
	assert.Equal(t, models.DefaultAbout, created.About)
	assert.Equal(t, models.DefaultAvatar, created.Avatar)
}

func TestRegisterUserRejectsDuplicates(t *testing.T) {
	users := newFakeUserStore()
	users.add("dias", "dias@example.com")
	svc := NewUserService(users)

	_, err := svc.RegisterUser(context.Background(), RegisterInput{
		Username: "dias",
		Email:    "other@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))

	_, err = svc.RegisterUser(context.Background(), RegisterInput{
		Username: "other",
		Email:    "dias@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestRegisterUserValidatesInput(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.RegisterUser(context.Background(), RegisterInput{Username: "dias", Password: "secret123"})
	require.Error(t, err, "email required")
	assert.True(t, apperrors.IsInvalid(err))

	_, err = svc.RegisterUser(context.Background(), RegisterInput{Username: "dias", Email: "not-an-email", Password: "secret123"})
	require.Error(t, err, "email must look like an email")
	assert.True(t, apperrors.IsInvalid(err))

	_, err = svc.RegisterUser(context.Background(), RegisterInput{Username: "d", Email: "dias@example.com", Password: "secret123"})
	require.Error(t, err, "username too short")
	assert.True(t, apperrors.IsInvalid(err))
}

func TestAuthenticateUser(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	_, err := svc.RegisterUser(context.Background(), RegisterInput{
		Username: "dias",
		Email:    "dias@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	user, err := svc.AuthenticateUser(context.Background(), "dias", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "dias", user.Username)

	_, err = svc.AuthenticateUser(context.Background(), "dias", "wrong")
	assert.Error(t, err)

	_, err = svc.AuthenticateUser(context.Background(), "nobody", "secret123")
	assert.Error(t, err)
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	created, err := svc.RegisterUser(context.Background(), RegisterInput{
		Username: "dias",
		Email:    "dias@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	password := "newsecret"
	updated, err := svc.UpdateProfile(context.Background(), created.ID.Hex(), UpdateProfileInput{Password: &password})
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.HashedPassword), []byte("newsecret")))
}

func TestUpdateProfileRejectsTakenUsername(t *testing.T) {
	users := newFakeUserStore()
	users.add("taken", "taken@example.com")
	svc := NewUserService(users)

	created, err := svc.RegisterUser(context.Background(), RegisterInput{
		Username: "dias",
		Email:    "dias@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	taken := "taken"
	_, err = svc.UpdateProfile(context.Background(), created.ID.Hex(), UpdateProfileInput{Username: &taken})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}
