package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	user "blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
)

type userService struct {
	repo   user.Repository
	tokens *jwt.Manager
}

func NewUserService(repo user.Repository, tokens *jwt.Manager) user.Service {
	return &userService{repo: repo, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrValidation, err)
	}

	taken, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, user.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleReader
	if req.Role != "" {
		parsed, ok := user.ParseRole(req.Role)
		if !ok {
			return nil, fmt.Errorf("%w: unknown role %q", user.ErrValidation, req.Role)
		}
		role = parsed
	}

	u := &user.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id": u.ID.String(),
		"role":    string(u.Role),
	})

	return s.issueTokens(u)
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrValidation, err)
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email and wrong password produce the same message so the
		// endpoint does not leak which accounts exist.
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

func (s *userService) issueTokens(u *user.User) (*user.AuthResponse, error) {
	access, err := s.tokens.GenerateAccessToken(u.ID.String(), u.Email, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := s.tokens.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	sanitized := *u
	sanitized.Password = ""

	return &user.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         &sanitized,
	}, nil
}
