package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/avdeev/go-coursebook/internal/config"
	"github.com/avdeev/go-coursebook/internal/logger"
	"github.com/avdeev/go-coursebook/internal/mock"
	"github.com/avdeev/go-coursebook/internal/store"
	"github.com/avdeev/go-coursebook/internal/validators"
	"github.com/avdeev/go-coursebook/models"
)

func newTestUserService(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(mockUsers, validators.NewRequestValidator(), config.App{BcryptCost: bcrypt.MinCost}, logger.Nop())

	return svc, mockUsers
}

func validRegistration() models.UserRegistration {
	return models.UserRegistration{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "joepassword",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserService(t, ctrl)
	ctx := context.Background()
	registration := validRegistration()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, registration.FirstName, user.FirstName)
			assert.Equal(t, registration.LastName, user.LastName)
			assert.Equal(t, registration.EmailAddress, user.EmailAddress)
			assert.NotEqual(t, registration.Password, user.PasswordHash, "password must be hashed before storage")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(registration.Password)))

			user.ID = 1
			return user, nil
		},
	)

	registeredUser, err := svc.Register(ctx, registration)
	require.NoError(t, err)
	assert.Equal(t, int64(1), registeredUser.ID)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserService(t, ctrl)

	_, err := svc.Register(context.Background(), models.UserRegistration{EmailAddress: "joe@smith.com"})
	require.Error(t, err)

	validationErr, ok := validators.AsValidationError(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	assert.Len(t, validationErr.Messages, 3)
	assert.Contains(t, validationErr.Messages, `Please provide a value for "firstName"`)
	assert.Contains(t, validationErr.Messages, `Please provide a value for "lastName"`)
	assert.Contains(t, validationErr.Messages, `Please provide a value for "password"`)
}

func TestUserService_Register_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserService(t, ctrl)

	registration := validRegistration()
	registration.EmailAddress = "not-an-email"

	_, err := svc.Register(context.Background(), registration)
	require.Error(t, err)

	validationErr, ok := validators.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Please provide a valid email address"}, validationErr.Messages)
}

func TestUserService_Register_EmailAlreadyTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyTaken)

	_, err := svc.Register(ctx, validRegistration())
	require.Error(t, err)

	validationErr, ok := validators.AsValidationError(err)
	require.True(t, ok, "a taken email must surface as a validation error")
	assert.Equal(t, []string{validators.MsgEmailAlreadyTaken}, validationErr.Messages)
}

func TestUserService_Register_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Register(ctx, validRegistration())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)

	_, ok := validators.AsValidationError(err)
	assert.False(t, ok, "a storage failure must not look like a validation error")
}

func TestUserService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserService(t, ctrl)
	ctx := context.Background()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("joepassword"), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := models.User{
		ID:           1,
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		PasswordHash: string(passwordHash),
	}

	mockUsers.EXPECT().FindUserByEmail(ctx, "joe@smith.com").Return(storedUser, nil)

	authenticatedUser, err := svc.Authenticate(ctx, "joe@smith.com", "joepassword")
	require.NoError(t, err)
	assert.Equal(t, storedUser, authenticatedUser)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserService(t, ctrl)
	ctx := context.Background()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("joepassword"), bcrypt.MinCost)
	require.NoError(t, err)

	mockUsers.EXPECT().FindUserByEmail(ctx, "joe@smith.com").
		Return(models.User{ID: 1, EmailAddress: "joe@smith.com", PasswordHash: string(passwordHash)}, nil)

	_, err = svc.Authenticate(ctx, "joe@smith.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Authenticate_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "nobody@smith.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Authenticate(ctx, "nobody@smith.com", "joepassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials,
		"an unknown email must be indistinguishable from a wrong password")
}

func TestUserService_Authenticate_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserService(t, ctrl)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "", "joepassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "joe@smith.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Authenticate_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestUserService(t, ctrl)
	ctx := context.Background()

	repoErr := errors.New("connection reset")
	mockUsers.EXPECT().FindUserByEmail(ctx, "joe@smith.com").Return(models.User{}, repoErr)

	_, err := svc.Authenticate(ctx, "joe@smith.com", "joepassword")
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
