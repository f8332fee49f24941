package services

import (
	"context"
	"errors"
	"log"

	"libshelf/internal/adapters/persistence/models"
	"libshelf/internal/adapters/persistence/repositories"
	"libshelf/internal/config"
	"libshelf/internal/core/domain"
	"libshelf/internal/pkg/jwt"
	"libshelf/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult carries the issued token and the authenticated user
type LoginResult struct {
	User  *models.UserResponse `json:"user"`
	Token string               `json:"token"`
}

// Register registers a new user
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUsernameTaken
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     input.Name,
		Username: input.Username,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Username)
	return user.ToResponse(), nil
}

// Login authenticates a user and issues an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(user.ID, user.Name, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Username)
	return &LoginResult{
		User:  user.ToResponse(),
		Token: token,
	}, nil
}
