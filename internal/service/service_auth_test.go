package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/oraculo-app/oraculo-sync/internal/config"
	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/internal/mock"
	"github.com/oraculo-app/oraculo-sync/internal/store"
	"github.com/oraculo-app/oraculo-sync/models"
)

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	mockRepo := mock.NewMockUserRepository(ctrl)
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "oraculo-sync-test",
		TokenDuration: time.Hour,
	}

	return NewAuthService(mockRepo, cfg, logger.Nop()), mockRepo
}

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{Login: "ana", Password: "super-secret", Name: "Ana"}

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Empty(t, u.Password, "plain-text password must not reach the repository")
			require.NotEmpty(t, u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("super-secret")))

			u.UserID = 1
			return u, nil
		},
	)

	created, err := svc.RegisterUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	tests := []struct {
		name string
		user models.User
	}{
		{"empty login", models.User{Password: "pw"}},
		{"empty password", models.User{Login: "ana"}},
		{"both empty", models.User{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.user)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.User{Login: "ana", Password: "pw"})
	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.EXPECT().FindUserByLogin(ctx, gomock.Any()).
		Return(models.User{UserID: 7, Login: "ana", PasswordHash: string(hash)}, nil)

	found, err := svc.Login(ctx, models.User{Login: "ana", Password: "super-secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.EXPECT().FindUserByLogin(ctx, gomock.Any()).
		Return(models.User{UserID: 7, Login: "ana", PasswordHash: string(hash)}, nil)

	_, err = svc.Login(ctx, models.User{Login: "ana", Password: "wrong-password"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByLogin(ctx, gomock.Any()).
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.User{Login: "ghost", Password: "pw"})
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "garbage.token.value")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_ErrorDoesNotLeakDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid),
		"all token failures must normalise to ErrTokenIsExpiredOrInvalid")
}
