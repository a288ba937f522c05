package gate_test

import (
	"testing"

	"github.com/goliatone/go-router"
	gate "github.com/shelfside/go-auth-gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginRequestValidate(t *testing.T) {
	valid := gate.LoginRequest{Email: "reader@example.com", Password: "password123"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		payload gate.LoginRequest
	}{
		{"missing email", gate.LoginRequest{Password: "password123"}},
		{"bad email", gate.LoginRequest{Email: "not-an-email", Password: "password123"}},
		{"missing password", gate.LoginRequest{Email: "reader@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.payload.Validate())
		})
	}
}

func TestRegistrationCreatePayloadValidate(t *testing.T) {
	valid := gate.RegistrationCreatePayload{
		Email:           "reader@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		payload gate.RegistrationCreatePayload
	}{
		{"mismatched confirmation", gate.RegistrationCreatePayload{
			Email: "reader@example.com", Password: "password123", ConfirmPassword: "password456",
		}},
		{"short password", gate.RegistrationCreatePayload{
			Email: "reader@example.com", Password: "short", ConfirmPassword: "short",
		}},
		{"missing email", gate.RegistrationCreatePayload{
			Password: "password123", ConfirmPassword: "password123",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.payload.Validate())
		})
	}
}

func TestNewAuthControllerDefaults(t *testing.T) {
	store := gate.NewMemorySessionStore()
	auther := gate.NewAuthenticator(new(MockIdentityProvider), store).WithLogger(nopLogger{})
	ra, err := gate.NewHTTPAuthenticator(auther, store, newGuardConfig())
	require.NoError(t, err)

	controller := gate.NewAuthController(
		gate.WithControllerAuther(ra),
		gate.WithControllerLogger(nopLogger{}),
	)

	assert.Equal(t, "/login", controller.Routes.Login)
	assert.Equal(t, "/logout", controller.Routes.Logout)
	assert.Equal(t, "/register", controller.Routes.Register)
	assert.Equal(t, "/", controller.Home)
	assert.NotNil(t, controller.ErrorHandler)
}

func TestNewAuthControllerRequiresAuther(t *testing.T) {
	assert.Panics(t, func() {
		gate.NewAuthController()
	})
}

func TestLoginPostValidationFailure(t *testing.T) {
	store := gate.NewMemorySessionStore()
	auther := gate.NewAuthenticator(new(MockIdentityProvider), store).WithLogger(nopLogger{})
	ra, err := gate.NewHTTPAuthenticator(auther, store, newGuardConfig())
	require.NoError(t, err)

	controller := gate.NewAuthController(
		gate.WithControllerAuther(ra),
		gate.WithControllerLogger(nopLogger{}),
	)

	mockCtx := new(MockContext)
	mockCtx.On("Bind", mock.Anything).Run(func(args mock.Arguments) {
		payload := args.Get(0).(*gate.LoginRequest)
		payload.Email = "not-an-email"
		payload.Password = ""
	}).Return(nil)

	mockCtx.On("Render", "login", mock.MatchedBy(func(bind any) bool {
		viewCtx, ok := bind.(router.ViewContext)
		if !ok {
			return false
		}
		validationErrs, ok := viewCtx["validation"].(map[string]string)
		return ok && len(validationErrs) > 0
	})).Return(nil)

	require.NoError(t, controller.LoginPost(mockCtx))
	mockCtx.AssertExpectations(t)
}
