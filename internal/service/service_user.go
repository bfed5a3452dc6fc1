package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/avdeev/go-coursebook/internal/config"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/store"
	"github.com/avdeev/go-coursebook/internal/validators"
	"github.com/avdeev/go-coursebook/models"
)

// userService is the concrete implementation of UserService.
// It handles account registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator evaluates the `validate` tags on registration payloads.
	validator validators.Validator

	// bcryptCost is the cost parameter passed to bcrypt when hashing
	// passwords. Zero falls back to the bcrypt default.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &userService{
		userRepository: userRepository,
		validator:      validator,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The registration payload is validated first, so that a response can report
// every missing field at once. The plaintext password is then replaced with
// its bcrypt hash before the record reaches the repository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - a *validators.ValidationError listing all violated rules, including
//     an already-taken email address.
//   - A wrapped storage error if the repository call fails for any other
//     reason.
func (u *userService) Register(ctx context.Context, registration models.UserRegistration) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, registration); err != nil {
		log.Debug().Err(err).Str("func", "Register").Msg("registration payload rejected")
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(registration.Password), u.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := u.userRepository.CreateUser(ctx, models.User{
		FirstName:    registration.FirstName,
		LastName:     registration.LastName,
		EmailAddress: registration.EmailAddress,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyTaken) {
			log.Debug().Str("emailAddress", registration.EmailAddress).Msg("email address already registered")
			return models.User{}, &validators.ValidationError{Messages: []string{validators.MsgEmailAlreadyTaken}}
		}

		log.Err(err).Str("func", "Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate verifies an email address and plaintext password pair.
//
// Missing credentials, an unknown email address and a wrong password all
// produce the same ErrInvalidCredentials, so a caller probing the endpoint
// cannot distinguish between an unregistered address and a bad password.
// Repository failures other than a missed lookup are wrapped and returned
// as-is.
func (u *userService) Authenticate(ctx context.Context, emailAddress string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if emailAddress == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := u.userRepository.FindUserByEmail(ctx, emailAddress)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("func", "Authenticate").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
