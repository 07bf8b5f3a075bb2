package service

import (
	"context"
	"errors"
	"strings"

	"github.com/coursehub/coursehub-go/internal/crypto"
	"github.com/coursehub/coursehub-go/internal/model"
	"github.com/coursehub/coursehub-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserParamsRequired = errors.New("param is missing or the value is empty: user")
)

// UserStore persists users. Implemented by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles registration and login.
type AuthService struct {
	users  UserStore
	tokens *crypto.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens *crypto.TokenService) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new user account and returns an auth token.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if req.User == nil {
		return model.AuthResponse{}, ErrUserParamsRequired
	}
	params := *req.User
	params.Email = normalizeEmail(params.Email)

	messages := validateStruct(params)
	if len(params.Password) > crypto.MaxPasswordBytes {
		messages = append(messages, "Password is too long (maximum is 72 characters)")
	}
	if params.PasswordConfirmation != nil && *params.PasswordConfirmation != params.Password {
		messages = append(messages, "Password confirmation doesn't match Password")
	}
	if len(messages) > 0 {
		return model.AuthResponse{}, newValidationError(messages...)
	}

	hash, err := crypto.HashPassword(params.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:        params.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, newValidationError("Email has already been taken")
		}
		return model.AuthResponse{}, err
	}

	return s.authResponse(user, "User registered successfully")
}

// Login authenticates a user and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse(user, "Login successful")
}

func (s *AuthService) authResponse(user *model.User, message string) (model.AuthResponse, error) {
	token, err := s.tokens.Encode(user.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Message: message,
		Token:   token,
		User: model.UserResponse{
			ID:    user.ID,
			Email: user.Email,
		},
	}, nil
}

// normalizeEmail lower-cases an email so lookups and uniqueness ignore case.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
