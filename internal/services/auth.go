package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	jwtService     service.JWTService
	logger         *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (s *AuthService) SignUp(ctx context.Context, payload dto.SignUpDTO) (*dto.UserDTO, error) {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.userRepository.CreateUser(ctx, entities.User{
		Email:        payload.Email,
		Name:         payload.Name,
		PasswordHash: hash,
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrEmailTaken) {
			s.logger.Error("failed to create user", zap.Error(err))
		}
		return nil, err
	}

	return &dto.UserDTO{ID: id, Email: payload.Email, Name: payload.Name}, nil
}

// SignIn never reveals whether the email or the password was wrong.
func (s *AuthService) SignIn(ctx context.Context, payload dto.SignInDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UserDTO{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}
