package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type UserService struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	validate *validator.Validate

	dummyOnce sync.Once
	dummyHash string
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) *UserService {
	return &UserService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(),
	}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (domain.AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return domain.AuthResult{}, domain.ErrMissingFields
	}
	if !s.isEmail(email) {
		return domain.AuthResult{}, domain.ErrInvalidEmail
	}
	if len(input.Password) < domain.MinPasswordLength {
		return domain.AuthResult{}, domain.ErrPasswordTooShort
	}

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.AuthResult{}, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return domain.AuthResult{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	now := timestamp()
	user := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.AuthResult{}, err
	}

	return s.authResult(user)
}

// Login reports unknown emails and wrong passwords with the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.AuthResult{}, domain.ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		// Keep response time close to the wrong-password path.
		_ = s.hasher.Compare(s.dummyPasswordHash(), password)
		return domain.AuthResult{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.AuthResult{}, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if !errors.Is(err, ports.ErrPasswordMismatch) {
			zap.L().Error("failed to compare password hash", zap.String("user_id", user.ID), zap.Error(err))
		}
		return domain.AuthResult{}, domain.ErrInvalidCredentials
	}

	return s.authResult(user)
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileInput) (domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || !s.isEmail(email) {
		return domain.User{}, domain.ErrInvalidProfile
	}

	existing, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.ID != userID:
		return domain.User{}, domain.ErrEmailTaken
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return domain.User{}, err
	}

	return s.users.UpdateProfile(ctx, userID, name, email, timestamp())
}

func (s *UserService) ChangePassword(ctx context.Context, userID string, input domain.ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return domain.ErrMissingFields
	}
	if len(input.NewPassword) < domain.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(user.PasswordHash, input.CurrentPassword); err != nil {
		if !errors.Is(err, ports.ErrPasswordMismatch) {
			zap.L().Error("failed to compare password hash", zap.String("user_id", user.ID), zap.Error(err))
		}
		return domain.ErrWrongPassword
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.users.UpdatePassword(ctx, userID, hash, timestamp())
}

func (s *UserService) authResult(user domain.User) (domain.AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return domain.AuthResult{User: user, Token: token}, nil
}

func (s *UserService) isEmail(email string) bool {
	return s.validate.Var(email, "required,email") == nil
}

func (s *UserService) dummyPasswordHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(uuid.NewString())
		if err != nil {
			zap.L().Warn("failed to build dummy password hash", zap.Error(err))
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

// timestamp matches the DATETIME(6) precision of the store.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
