package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avdeev/go-coursebook/internal/validators"
	"github.com/avdeev/go-coursebook/models"
)

func TestCreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockUsers, _ := newTestHandler(ctrl)

	mockUsers.EXPECT().Register(gomock.Any(), models.UserRegistration{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "joepassword",
	}).Return(models.User{ID: 1}, nil)

	rr := serve(h, jsonRequest(http.MethodPost, "/api/users",
		`{"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com","password":"joepassword"}`))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Empty(t, rr.Body.String())
}

func TestCreateUser_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockUsers, _ := newTestHandler(ctrl)

	mockUsers.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{},
		&validators.ValidationError{Messages: []string{
			`Please provide a value for "firstName"`,
			`Please provide a value for "lastName"`,
		}})

	rr := serve(h, jsonRequest(http.MethodPost, "/api/users", `{}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t,
		`{"errors":["Please provide a value for \"firstName\"","Please provide a value for \"lastName\""]}`,
		rr.Body.String())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockUsers, _ := newTestHandler(ctrl)

	mockUsers.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{},
		&validators.ValidationError{Messages: []string{validators.MsgEmailAlreadyTaken}})

	rr := serve(h, jsonRequest(http.MethodPost, "/api/users",
		`{"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com","password":"joepassword"}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errors":["The email address you provided is already in use"]}`, rr.Body.String())
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	rr := serve(h, jsonRequest(http.MethodPost, "/api/users", `{"firstName":`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCurrentUser_ReturnsOwnRecordWithoutSecrets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockUsers, _ := newTestHandler(ctrl)

	mockUsers.EXPECT().Authenticate(gomock.Any(), "joe@smith.com", "joepassword").
		Return(models.User{
			ID:           1,
			FirstName:    "Joe",
			LastName:     "Smith",
			EmailAddress: "joe@smith.com",
			PasswordHash: "$2a$10$secret-hash",
		}, nil)

	req := jsonRequest(http.MethodGet, "/api/users", "")
	req.SetBasicAuth("joe@smith.com", "joepassword")
	rr := serve(h, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"id":1,"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com"}`,
		rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "secret-hash")
}

func TestCurrentUser_WithoutCredentials_Returns401(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	rr := serve(h, jsonRequest(http.MethodGet, "/api/users", ""))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"message":"Access Denied"}`, rr.Body.String())
}
