package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/store"
	"github.com/MKhiriev/go-natours/internal/validators"
	"github.com/MKhiriev/go-natours/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.GetUser(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context, query models.ListQuery) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx, query)
}

func (s *userService) UpdateMe(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	filtered := models.UserUpdate{
		Name:  update.Name,
		Email: update.Email,
	}
	if filtered.Name == nil && filtered.Email == nil {
		return models.User{}, store.ErrNothingToUpdate
	}

	return s.UpdateUser(ctx, id, filtered)
}

func (s *userService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}

// DeleteMe deactivates the account. The row is kept so that reviews and
// bookings stay attached to it.
func (s *userService) DeleteMe(ctx context.Context, id int64) error {
	if err := s.userRepository.DeactivateUser(ctx, id); err != nil {
		return fmt.Errorf("error deactivating user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*userService.DeleteMe").Int64("user_id", id).Msg("user deactivated")
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepository.DeleteUser(ctx, id)
}
