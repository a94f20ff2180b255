package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yourssu.com/blog/internal/dto"
	"yourssu.com/blog/internal/model"
	"yourssu.com/blog/internal/service"
	"yourssu.com/blog/pkg/apperror"
)

func TestUserService_Join(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		var created *model.User
		userRepo := &mockUserRepo{
			createFunc: func(_ context.Context, user *model.User) error {
				created = user
				return nil
			},
		}

		svc := service.NewUserService(userRepo, &mockHasher{})

		res, err := svc.Join(context.Background(), dto.UserJoinRequest{
			Email:    "a@x.com",
			Password: "pw1",
			Username: "A",
		})
		require.NoError(t, err)

		assert.Equal(t, "a@x.com", res.Email)
		assert.Equal(t, "A", res.Username)

		require.NotNil(t, created)
		assert.Equal(t, "hashed:pw1", created.PasswordHash, "plaintext must never be persisted")
	})

	t.Run("duplicate email is rejected without persisting", func(t *testing.T) {
		createCalls := 0
		userRepo := &mockUserRepo{
			findByEmailFunc: func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 1, Email: email, Username: "A"}, nil
			},
			createFunc: func(_ context.Context, _ *model.User) error {
				createCalls++
				return nil
			},
		}

		svc := service.NewUserService(userRepo, &mockHasher{})

		_, err := svc.Join(context.Background(), dto.UserJoinRequest{
			Email:    "a@x.com",
			Password: "pw2",
			Username: "B",
		})
		assert.ErrorIs(t, err, apperror.ErrDuplicateEmail)
		assert.Zero(t, createCalls)
	})
}

func TestUserService_Delete(t *testing.T) {
	registered := func(_ context.Context, email string) (*model.User, error) {
		return &model.User{ID: 7, Email: email, PasswordHash: "hashed:pw1"}, nil
	}

	t.Run("unknown email", func(t *testing.T) {
		svc := service.NewUserService(&mockUserRepo{}, &mockHasher{})

		err := svc.Delete(context.Background(), dto.UserDeleteRequest{
			Email:    "nobody@x.com",
			Password: "pw1",
		})
		assert.ErrorIs(t, err, apperror.ErrUserNotFound)
	})

	t.Run("wrong password does not delete", func(t *testing.T) {
		deleteCalls := 0
		userRepo := &mockUserRepo{
			findByEmailFunc: registered,
			deleteFunc: func(_ context.Context, _ uint) error {
				deleteCalls++
				return nil
			},
		}

		svc := service.NewUserService(userRepo, &mockHasher{})

		err := svc.Delete(context.Background(), dto.UserDeleteRequest{
			Email:    "a@x.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, apperror.ErrWrongPassword)
		assert.Zero(t, deleteCalls)
	})

	t.Run("correct password deletes by id", func(t *testing.T) {
		var deletedID uint
		userRepo := &mockUserRepo{
			findByEmailFunc: registered,
			deleteFunc: func(_ context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}

		svc := service.NewUserService(userRepo, &mockHasher{})

		err := svc.Delete(context.Background(), dto.UserDeleteRequest{
			Email:    "a@x.com",
			Password: "pw1",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(7), deletedID)
	})
}
