package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ArowuTest/engage-crm/internal/apperrors"
	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories"
	"github.com/ArowuTest/engage-crm/pkg/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const defaultRole = "admin"

var errInvalidCredentials = fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)

type authService struct {
	userRepo   repositories.AdminUserRepository
	blacklist  repositories.TokenBlacklist
	tokens     *jwt.TokenService
	bcryptCost int
	now        func() time.Time
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(userRepo repositories.AdminUserRepository, blacklist repositories.TokenBlacklist, tokens *jwt.TokenService) AuthService {
	return &authService{
		userRepo:   userRepo,
		blacklist:  blacklist,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// Register creates an operator account and returns a token for it
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	if name == "" || email == "" {
		return nil, apperrors.Validation("name and email are required")
	}
	if len(req.Password) < 6 {
		return nil, apperrors.Validation("password must be at least 6 characters")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict("user with email %s", email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.AdminUser{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     defaultRole,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, persistence("create user", err)
	}

	slog.Info("User registered", "userId", user.ID.Hex(), "email", user.Email)
	return s.issue(user)
}

// Login checks the password and returns a fresh token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			slog.Warn("Login for unknown user", "email", req.Email)
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		slog.Warn("Password mismatch", "email", req.Email)
		return nil, errInvalidCredentials
	}

	return s.issue(user)
}

// Me returns the account behind the authenticated subject
func (s *authService) Me(ctx context.Context, userID string) (*models.AdminUser, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", apperrors.ErrUnauthorized)
	}
	return s.userRepo.FindByID(ctx, id)
}

// Logout revokes the token until it would have expired
func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return apperrors.Validation("token has no id")
	}
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.Revoke(ctx, tokenID, ttl); err != nil {
		return apperrors.Persistence("revoke token", err)
	}
	return nil
}

// Authenticate validates the token signature and expiry, then the denylist
func (s *authService) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, apperrors.Persistence("check token revocation", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: token has been revoked", apperrors.ErrUnauthorized)
	}
	return claims, nil
}

func (s *authService) issue(user *models.AdminUser) (*models.AuthResponse, error) {
	token, err := s.tokens.Generate(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}
