package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with server-assigned
// fields (ID, CreatedAt, defaults).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Photo == "" {
		user.Photo = models.DefaultPhoto
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	row := r.QueryRowContext(ctx, insertUser,
		user.Name, strings.ToLower(user.Email), user.Photo, string(user.Role), user.PasswordHash, nullTime(user.PasswordChangedAt))

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, mapWriteError(err, ErrEmailAlreadyExists)
	}

	return created, nil
}

// FindUserByEmail retrieves an active user by email (case-insensitive).
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, strings.ToLower(email))
}

// GetUser retrieves an active user by id.
func (r *userRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.GetUser", findUserByID, id)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.QueryRowContext(ctx, query, arg))
	if err != nil {
		err = mapReadError(err)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", funcName).Msg("error finding user")
		}
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context, query models.ListQuery) ([]models.User, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListUsersQuery(query)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to execute query")
		return nil, mapReadError(err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return users, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", id).Msg("error updating user")
		return models.User{}, mapWriteError(err, ErrEmailAlreadyExists)
	}

	return user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string, changedAt time.Time) error {
	return r.execAffectingOne(ctx, "*userRepository.UpdatePassword", updateUserPassword, id, passwordHash, changedAt)
}

func (r *userRepository) DeactivateUser(ctx context.Context, id int64) error {
	return r.execAffectingOne(ctx, "*userRepository.DeactivateUser", deactivateUser, id)
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.execAffectingOne(ctx, "*userRepository.DeleteUser", deleteUser, id)
}
