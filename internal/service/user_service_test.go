package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "github.com/toplustar/Management-tool/internal/errors"
	"github.com/toplustar/Management-tool/internal/model"
)

func storedUser(id uuid.UUID) *model.User {
	return &model.User{
		ID:         id,
		Email:      "ann@example.com",
		FirstName:  "Ann",
		LastName:   "Lee",
		Phone:      "111",
		Department: "Engineering",
		Position:   "Developer",
		Role:       model.RoleEmployee,
		IsActive:   true,
	}
}

func TestUserService_UpdateProfile_PartialFields(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name   string
		update ProfileUpdate
		check  func(*testing.T, *model.User)
	}{
		{
			name:   "only phone set leaves everything else",
			update: ProfileUpdate{Phone: "555"},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, "555", u.Phone)
				assert.Equal(t, "Ann", u.FirstName)
				assert.Equal(t, "Lee", u.LastName)
				assert.Equal(t, "Engineering", u.Department)
				assert.Equal(t, "Developer", u.Position)
			},
		},
		{
			name:   "empty string is treated as absent",
			update: ProfileUpdate{FirstName: "", LastName: "Chang"},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, "Ann", u.FirstName)
				assert.Equal(t, "Chang", u.LastName)
			},
		},
		{
			name:   "all empty changes nothing",
			update: ProfileUpdate{},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, *storedUser(u.ID), *u)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockRepo.On("FindByID", mock.Anything, id).Return(storedUser(id), nil)
			mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

			svc := NewUserService(mockRepo, nil)
			user, err := svc.UpdateProfile(context.Background(), id, tt.update)

			require.NoError(t, err)
			tt.check(t, user)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_AdminUpdateUser(t *testing.T) {
	id := uuid.New()
	falseVal := false

	tests := []struct {
		name   string
		update AdminUserUpdate
		check  func(*testing.T, *model.User)
	}{
		{
			name:   "role and email replaced, rest kept",
			update: AdminUserUpdate{Email: "new@example.com", Role: model.RoleAdmin},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, "new@example.com", u.Email)
				assert.Equal(t, model.RoleAdmin, u.Role)
				assert.Equal(t, "Ann", u.FirstName)
				assert.True(t, u.IsActive)
			},
		},
		{
			name:   "explicit false deactivates",
			update: AdminUserUpdate{IsActive: &falseVal},
			check: func(t *testing.T, u *model.User) {
				assert.False(t, u.IsActive)
			},
		},
		{
			name:   "omitted isActive is preserved",
			update: AdminUserUpdate{ProfileUpdate: ProfileUpdate{Position: "Lead"}},
			check: func(t *testing.T, u *model.User) {
				assert.True(t, u.IsActive)
				assert.Equal(t, "Lead", u.Position)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockRepo.On("FindByID", mock.Anything, id).Return(storedUser(id), nil)
			mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

			svc := NewUserService(mockRepo, nil)
			user, err := svc.AdminUpdateUser(context.Background(), id, tt.update)

			require.NoError(t, err)
			tt.check(t, user)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	user, err := svc.GetUser(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserService_DeleteUser(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(storedUser(id), nil)
	mockRepo.On("Delete", mock.Anything, id).Return(nil)

	svc := NewUserService(mockRepo, nil)
	require.NoError(t, svc.DeleteUser(context.Background(), id))
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), id), apperrors.ErrUserNotFound)
}
