package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sgrigorev/shop-api/internal/models"
	"github.com/sgrigorev/shop-api/internal/repositories"
	"github.com/sgrigorev/shop-api/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)
	ctx := context.Background()

	t.Run("successful registration stores a verifiable hash", func(t *testing.T) {
		var savedHash string
		mockWriter.EXPECT().
			Save(gomock.Any(), "alice", gomock.Any()).
			DoAndReturn(func(_ context.Context, username, passwordHash string) (*models.UserDB, error) {
				savedHash = passwordHash
				return &models.UserDB{ID: 1, Username: username, PasswordHash: passwordHash}, nil
			})

		user, err := svc.Register(ctx, "alice", "pass123")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)

		// The stored hash must verify against the original password only.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedHash), []byte("pass123")))
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(savedHash), []byte("other")))
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "alice", gomock.Any()).
			Return(nil, repositories.ErrUsernameTaken)

		user, err := svc.Register(ctx, "alice", "pass123")
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "bob", gomock.Any()).
			Return(nil, errors.New("db down"))

		user, err := svc.Register(ctx, "bob", "pass123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrUserAlreadyExists)
		assert.Nil(t, user)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := &models.UserDB{ID: 7, Username: "admin", PasswordHash: string(hash)}

	t.Run("successful login", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "admin").Return(admin, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), int64(7)).Return("JWT_TOKEN", nil)

		token, err := svc.Login(ctx, "admin", "correct")
		assert.NoError(t, err)
		assert.Equal(t, "JWT_TOKEN", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "admin").Return(admin, nil)

		token, err := svc.Login(ctx, "admin", "wrong")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("unknown user is indistinguishable from wrong password", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		token, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "admin").Return(nil, errors.New("db down"))

		token, err := svc.Login(ctx, "admin", "correct")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}
