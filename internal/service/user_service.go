package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/toplustar/Management-tool/internal/cache"
	apperrors "github.com/toplustar/Management-tool/internal/errors"
	"github.com/toplustar/Management-tool/internal/model"
	"github.com/toplustar/Management-tool/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// ProfileUpdate carries the self-service profile fields. An empty string means
// "leave the stored value untouched" — absence and empty are deliberately
// indistinguishable, matching the partial-update contract.
type ProfileUpdate struct {
	FirstName  string
	LastName   string
	Phone      string
	Department string
	Position   string
}

// AdminUserUpdate extends ProfileUpdate with the admin-only fields. IsActive
// is a pointer so that an explicit false is applied while omission is not.
type AdminUserUpdate struct {
	ProfileUpdate
	Email    string
	Role     string
	IsActive *bool
}

// UserService exposes profile and account management operations.
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*model.User, error)
	AdminUpdateUser(ctx context.Context, id uuid.UUID, update AdminUserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("profile:%s", id)
}

// GetUser returns a user by id, serving repeated reads from the cache.
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, profileCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// UpdateProfile applies the self-service partial update: only non-empty fields
// replace stored values.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	applyProfile(user, update)

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// AdminUpdateUser applies the admin partial update across all fields,
// including role and active state.
func (s *userService) AdminUpdateUser(ctx context.Context, id uuid.UUID, update AdminUserUpdate) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	applyProfile(user, update.ProfileUpdate)
	override(&user.Email, update.Email)
	override(&user.Role, update.Role)
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// DeleteUser removes the account. Existing reports are intentionally left in
// place; the admin listing resolves them to a missing owner.
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func applyProfile(user *model.User, update ProfileUpdate) {
	override(&user.FirstName, update.FirstName)
	override(&user.LastName, update.LastName)
	override(&user.Phone, update.Phone)
	override(&user.Department, update.Department)
	override(&user.Position, update.Position)
}

// override replaces dst only when v is non-empty.
func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
