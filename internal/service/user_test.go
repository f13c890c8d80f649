package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skillsharehq/skillshare-hub/internal/auth"
	"github.com/skillsharehq/skillshare-hub/internal/domain"
	"github.com/skillsharehq/skillshare-hub/internal/mocks"
	"github.com/skillsharehq/skillshare-hub/internal/model"
	"github.com/skillsharehq/skillshare-hub/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenManager := auth.NewTokenManager("test_secret", time.Hour)

	t.Run("registers and signs in", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *model.User) error {
				user.ID = uuid.New()
				return nil
			})

		svc := service.NewUserService(repo, auth.NewPasswordHasher(), tokenManager, nil, "http://localhost")

		result, err := svc.Signup(context.Background(), service.SignupInput{
			Email:     "  New.Student@Example.com ",
			Password:  "long enough secret",
			FirstName: "New",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "new.student@example.com", result.User.Email)
		assert.Equal(t, model.StatusActive, result.User.Status)
		assert.NotEqual(t, "long enough secret", result.User.PasswordHash)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrEmailAlreadyExists)

		svc := service.NewUserService(repo, auth.NewPasswordHasher(), tokenManager, nil, "http://localhost")

		_, err := svc.Signup(context.Background(), service.SignupInput{
			Email:     "taken@example.com",
			Password:  "long enough secret",
			FirstName: "Dup",
		})

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("weak password fails validation", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		svc := service.NewUserService(repo, auth.NewPasswordHasher(), tokenManager, nil, "http://localhost")

		_, err := svc.Signup(context.Background(), service.SignupInput{
			Email:     "short@example.com",
			Password:  "short",
			FirstName: "Shorty",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager("test_secret", time.Hour)

	hash, err := hasher.Hash("correct_password")
	assert.NoError(t, err)

	storedUser := &model.User{
		ID:           uuid.New(),
		Email:        "login@example.com",
		FirstName:    "Login",
		PasswordHash: hash,
		Status:       model.StatusActive,
	}

	t.Run("valid credentials", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			FindByEmail(gomock.Any(), storedUser.Email).
			Return(storedUser, nil)

		svc := service.NewUserService(repo, hasher, tokenManager, nil, "http://localhost")

		result, err := svc.Login(context.Background(), service.LoginInput{
			Email:    storedUser.Email,
			Password: "correct_password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, storedUser.ID, result.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			FindByEmail(gomock.Any(), storedUser.Email).
			Return(storedUser, nil)

		svc := service.NewUserService(repo, hasher, tokenManager, nil, "http://localhost")

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    storedUser.Email,
			Password: "wrong_password",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email looks like a wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.ErrUserNotFound)

		svc := service.NewUserService(repo, hasher, tokenManager, nil, "http://localhost")

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever_it_is",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("patches only the provided fields", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().
			FindByID(gomock.Any(), userID).
			Return(&model.User{ID: userID, FirstName: "Old", LastName: "Name", Bio: "old bio"}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		svc := service.NewUserService(repo, auth.NewPasswordHasher(), auth.NewTokenManager("test_secret", time.Hour), nil, "http://localhost")

		bio := "new bio"
		user, err := svc.UpdateProfile(context.Background(), userID, service.UpdateProfileInput{
			Bio: &bio,
		})

		assert.NoError(t, err)
		assert.Equal(t, "new bio", user.Bio)
		assert.Equal(t, "Old", user.FirstName)
	})
}
