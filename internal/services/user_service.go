package services

import (
	"context"
	"errors"
	"fmt"

	"photo-backend/internal/metrics"
	"photo-backend/internal/models"
)

// UserStore is the persistence the user service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type UserService struct {
	users      UserStore
	tokens     *TokenManager
	bcryptCost int
}

func NewUserService(users UserStore, tokens *TokenManager, bcryptCost int) *UserService {
	return &UserService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var messages []string
	messages = append(messages, check(req.Username, usernameRules...)...)
	messages = append(messages, check(req.Email, emailRules...)...)
	messages = append(messages, check(req.Password, passwordRules...)...)
	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	hash, err := HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		var dup *models.DuplicateError
		if errors.As(err, &dup) {
			return nil, &ValidationError{Messages: []string{dup.Error()}}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.UsersRegistered.Inc()
	return user, nil
}

func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !CheckPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &models.AuthResponse{AccessToken: token}, nil
}

// Authenticate resolves a bearer token to the user it was issued for.
// A bad token is ErrInvalidToken; a good token for a missing or changed user is ErrUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.Email != claims.Email {
		return nil, ErrUnauthorized
	}
	return user, nil
}
