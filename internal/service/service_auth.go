package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-natours/internal/config"
	"github.com/MKhiriev/go-natours/internal/logger"
	"github.com/MKhiriev/go-natours/internal/store"
	"github.com/MKhiriev/go-natours/internal/utils"
	"github.com/MKhiriev/go-natours/internal/validators"
	"github.com/MKhiriev/go-natours/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	// TokenIssuer is the "iss" claim of every session token.
	TokenIssuer = "go-natours"

	passwordHashCost = 12
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// hashCost is the bcrypt work factor.
	hashCost int

	// now is replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.JWTSecret,
		tokenDuration:  cfg.JWTExpiresIn,
		hashCost:       passwordHashCost,
		now:            time.Now,
		logger:         logger,
	}
}

// Signup validates the request, hashes the password and creates a user with
// the default role. The role can only be raised later by an admin.
//
// Returns the persisted user or:
//   - a *validators.ValidationError when the request breaks a rule;
//   - store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         request.Name,
		Email:        request.Email,
		Role:         models.RoleUser,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.Signup").Int64("user_id", user.ID).Msg("user signed up")
	return user, nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield ErrIncorrectCredentials
// so the response does not reveal which accounts exist.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		return models.User{}, ErrMissingCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrIncorrectCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		log.Warn().Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrIncorrectCredentials
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(TokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, TokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("rejected token")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.GetUser(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUserNoLongerExists
		}
		return models.User{}, fmt.Errorf("error loading token owner: %w", err)
	}

	if user.ChangedPasswordAfter(token.IssuedAtTime()) {
		return models.User{}, ErrPasswordChanged
	}

	return user, nil
}

// UpdatePassword replaces the password of userID after checking the
// current one. Tokens issued before the change stop working.
func (a *authService) UpdatePassword(ctx context.Context, userID int64, request models.UpdatePasswordRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error loading user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.PasswordCurrent)); err != nil {
		return models.User{}, ErrWrongCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), a.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	// one second back so a token issued right after the change stays valid
	changedAt := a.now().Add(-time.Second)
	if err = a.userRepository.UpdatePassword(ctx, userID, string(hash), changedAt); err != nil {
		log.Err(err).Str("func", "*authService.UpdatePassword").Int64("user_id", userID).Msg("error saving password")
		return models.User{}, fmt.Errorf("error saving password: %w", err)
	}

	user.PasswordHash = string(hash)
	user.PasswordChangedAt = &changedAt

	return user, nil
}
