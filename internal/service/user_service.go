package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"yourssu.com/blog/internal/dto"
	"yourssu.com/blog/internal/model"
	"yourssu.com/blog/internal/repository"
	"yourssu.com/blog/pkg/apperror"
)

type UserService interface {
	Join(ctx context.Context, req dto.UserJoinRequest) (*dto.UserJoinResponse, error)
	Delete(ctx context.Context, req dto.UserDeleteRequest) error
}

type userService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, hasher PasswordHasher) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func (s *userService) Join(ctx context.Context, req dto.UserJoinRequest) (*dto.UserJoinResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		Username:     req.Username,
	}

	// The unique index on email backstops a concurrent join with the same
	// address between the lookup above and this insert.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.UserJoinResponse{
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

func (s *userService) Delete(ctx context.Context, req dto.UserDeleteRequest) error {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrUserNotFound
		}
		return err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return apperror.ErrWrongPassword
	}

	// Articles and comments owned by the user go with the row via the
	// cascade foreign keys.
	return s.userRepo.Delete(ctx, user.ID)
}
