package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agrisense-io/agrisense-backend/internal/users"
	pkgAuth "github.com/agrisense-io/agrisense-backend/pkg/auth"
	"github.com/agrisense-io/agrisense-backend/pkg/config"
	"github.com/agrisense-io/agrisense-backend/pkg/db/models"
	"github.com/agrisense-io/agrisense-backend/pkg/enums"
	pkgerrors "github.com/agrisense-io/agrisense-backend/pkg/errors"
	"github.com/agrisense-io/agrisense-backend/pkg/security"
	"gorm.io/gorm"
)

// Every failed login gets the same message, whether the email was unknown or
// the password was wrong. Distinct messages would let a caller probe which
// emails have accounts.
const invalidCredentials = "Invalid credentials. Please check your email and password."

// Service defines the behavior needed by the auth controller.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
}

type userRepository interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type service struct {
	users       userRepository
	passwordCfg config.PasswordConfig
	jwtCfg      config.JWTConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	PasswordConfig config.PasswordConfig
	JWTConfig      config.JWTConfig
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{
		users:       params.UserRepo,
		passwordCfg: params.PasswordConfig,
		jwtCfg:      params.JWTConfig,
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if strings.TrimSpace(req.Name) == "" || req.Email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please provide name, email, and password")
	}
	if err := validateCredentials(req.Email, req.Password); err != nil {
		return nil, err
	}

	role := enums.UserRoleFarmer
	if req.Role != "" {
		parsed, err := enums.ParseUserRole(req.Role)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid role")
		}
		role = parsed
	}

	email := normalizeEmail(req.Email)
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check existing user")
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "User already exists with this email")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.Create(ctx, users.CreateUserDTO{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "User already exists with this email")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}

	token, err := s.mintToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    users.FromModel(user),
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Please provide email and password")
	}
	if err := validateCredentials(req.Email, req.Password); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentials)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	valid, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentials)
	}

	token, err := s.mintToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    users.FromModel(user),
	}, nil
}

func (s *service) mintToken(user *models.User) (string, error) {
	token, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	return token, nil
}

// validateCredentials applies the dashboard's loose email rule: the address
// must contain "@" and ".com". Kept as-is for client compatibility.
func validateCredentials(email, password string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".com") {
		return pkgerrors.New(pkgerrors.CodeValidation, "Email must be a valid email address (must contain @ and .com)")
	}
	if len(password) < 6 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Password must be at least 6 characters long")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
