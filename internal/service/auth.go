package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/freight-service/internal/domain/dto"
	"github.com/guttosm/freight-service/internal/domain/model"
	"github.com/guttosm/freight-service/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserExists is returned when trying to register an existing user.
	ErrUserExists = errors.New("user already exists")
)

// AuthService provides authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error)
	Register(ctx context.Context, email, password, name string) (*dto.TokenPair, *model.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, *model.User, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	// EnsureAdmin creates an admin account for email unless one already exists.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// AuthServiceImpl implements AuthService.
// It handles user authentication and delegates token operations to TokenService.
type AuthServiceImpl struct {
	userRepo     repository.UsersRepositoryInterface
	tokenService TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UsersRepositoryInterface, tokenService TokenService) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Login authenticates a user and returns JWT tokens.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil || !user.Active {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokenPair, err := s.tokenService.GenerateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate token pair: %w", err)
	}
	return tokenPair, user, nil
}

// Register creates an operator account and signs it in.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password, name string) (*dto.TokenPair, *model.User, error) {
	user, err := s.createUser(ctx, email, password, name, model.RoleOperator)
	if err != nil {
		return nil, nil, err
	}

	tokenPair, err := s.tokenService.GenerateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate token pair: %w", err)
	}
	return tokenPair, user, nil
}

// RefreshToken exchanges a refresh token for a new pair, re-reading the user so
// deactivated accounts and role changes take effect.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, *model.User, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || !user.Active {
		return nil, nil, ErrInvalidCredentials
	}

	tokenPair, err := s.tokenService.GenerateTokenPair(user)
	if err != nil {
		return nil, nil, err
	}
	return tokenPair, user, nil
}

func (s *AuthServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.Claims, error) {
	return s.tokenService.ValidateAccessToken(tokenString)
}

func (s *AuthServiceImpl) EnsureAdmin(ctx context.Context, email, password string) error {
	existing, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if existing != nil {
		if !existing.IsAdmin() {
			log.Warn().Str("email", existing.Email).Str("role", existing.Role).Msg("Seed admin email belongs to a non-admin account")
		}
		return nil
	}

	user, err := s.createUser(ctx, email, password, "Administrator", model.RoleAdmin)
	if errors.Is(err, ErrUserExists) {
		return nil
	}
	if err != nil {
		return err
	}
	log.Info().Str("email", user.Email).Msg("Created admin account")
	return nil
}

func (s *AuthServiceImpl) createUser(ctx context.Context, email, password, name, role string) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    normalizeEmail(email),
		Password: string(hashedPassword),
		Name:     strings.TrimSpace(name),
		Role:     role,
		Active:   true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
