package user

import (
	"FreshTrack-API/entities"
	"context"
	"errors"
	"gorm.io/gorm"
)

// Authentication is stubbed while the full account flow is built out on the
// client. Every request is attributed to a single development user, created on
// first use.
const (
	defaultUserEmail    = "test@example.com"
	defaultUserFullName = "Test User"
)

type (
	UserService interface {
		GetDefaultUser(ctx context.Context) (*entities.User, error)
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) GetDefaultUser(ctx context.Context) (*entities.User, error) {
	user, err := s.userRepository.GetFirstUser(ctx)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &entities.User{
		Email:    defaultUserEmail,
		FullName: defaultUserFullName,
	}
	if err := s.userRepository.CreateUser(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
