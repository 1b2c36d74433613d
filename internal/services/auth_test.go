package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
)

type memoryUserRepo struct {
	users  map[uint64]entities.User
	nextID uint64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uint64]entities.User)}
}

func (r *memoryUserRepo) CreateUser(_ context.Context, u entities.User) (uint64, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return 0, apperrors.ErrEmailTaken
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return u.ID, nil
}

func (r *memoryUserRepo) FindUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryUserRepo) FindUserByID(_ context.Context, id uint64) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func newAuthService() (*AuthService, service.JWTService) {
	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(newMemoryUserRepo(), jwtSvc, zap.NewNop()), jwtSvc
}

func TestSignUpAndSignIn(t *testing.T) {
	svc, jwtSvc := newAuthService()
	ctx := context.Background()

	user, err := svc.SignUp(ctx, dto.SignUpDTO{
		Email:    "tech@example.com",
		Name:     "Tech",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	tokens, err := svc.SignIn(ctx, dto.SignInDTO{
		Email:    "tech@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	claims, err := jwtSvc.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.False(t, claims.IsRefreshToken)

	refreshClaims, err := jwtSvc.ValidateToken(tokens.RefreshToken)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	payload := dto.SignUpDTO{Email: "dup@example.com", Name: "One", Password: "password-1"}
	_, err := svc.SignUp(ctx, payload)
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, payload)
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestSignInWrongCredentials(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, dto.SignUpDTO{Email: "a@example.com", Name: "A", Password: "password-1"})
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, dto.SignInDTO{Email: "a@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, dto.SignInDTO{Email: "missing@example.com", Password: "password-1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
