package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/dto"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/handler"
	"github.com/BounAbdallah/suivi-insertion-simplon-senegal/internal/service"
)

type mockAuthService struct {
	lastRegister dto.RegisterRequest
	lastLogin    dto.LoginRequest
	response     dto.LoginResponse
	err          error
}

func (m *mockAuthService) Register(_ context.Context, payload dto.RegisterRequest) (dto.LoginResponse, error) {
	m.lastRegister = payload
	if m.err != nil {
		return dto.LoginResponse{}, m.err
	}
	return m.response, nil
}

func (m *mockAuthService) Login(_ context.Context, payload dto.LoginRequest) (dto.LoginResponse, error) {
	m.lastLogin = payload
	if m.err != nil {
		return dto.LoginResponse{}, m.err
	}
	return m.response, nil
}

func (m *mockAuthService) Verify(_ context.Context, _ uint) (dto.AuthUser, error) {
	if m.err != nil {
		return dto.AuthUser{}, m.err
	}
	return m.response.User, nil
}

func newAuthApp(svc service.AuthService) *fiber.App {
	app := fiber.New()
	handler.NewAuthHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/auth"))
	return app
}

func TestAuthHandler_RegisterSuccess(t *testing.T) {
	svc := &mockAuthService{response: dto.LoginResponse{
		Token: "signed-token",
		User:  dto.AuthUser{ID: 1, Email: "awa@example.sn", Role: "apprenant"},
	}}
	app := newAuthApp(svc)

	payload := dto.RegisterRequest{
		Email:     "awa@example.sn",
		Password:  "secret123",
		FirstName: "Awa",
		LastName:  "Diop",
		Role:      "apprenant",
	}
	resp := postJSON(t, app, "/api/auth/register", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var response struct {
		Success bool              `json:"success"`
		Data    dto.LoginResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Equal(t, "signed-token", response.Data.Token)
	require.Equal(t, "awa@example.sn", svc.lastRegister.Email)
}

func TestAuthHandler_RegisterEmailTaken(t *testing.T) {
	app := newAuthApp(&mockAuthService{err: service.ErrEmailTaken})

	resp := postJSON(t, app, "/api/auth/register", dto.RegisterRequest{
		Email:     "dupe@example.sn",
		Password:  "secret123",
		FirstName: "Awa",
		LastName:  "Diop",
		Role:      "apprenant",
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAuthHandler_LoginErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		statusCode int
	}{
		{name: "bad credentials", err: service.ErrInvalidCredentials, statusCode: fiber.StatusUnauthorized},
		{name: "disabled account", err: service.ErrAccountDisabled, statusCode: fiber.StatusForbidden},
		{name: "generic", err: errors.New("boom"), statusCode: fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newAuthApp(&mockAuthService{err: tc.err})
			resp := postJSON(t, app, "/api/auth/login", dto.LoginRequest{
				Email:    "awa@example.sn",
				Password: "wrong",
			})
			require.Equal(t, tc.statusCode, resp.StatusCode)
		})
	}
}

func TestAuthHandler_VerifyDisabledAccount(t *testing.T) {
	svc := &mockAuthService{err: service.ErrAccountDisabled}
	app := fiber.New()
	group := app.Group("/api/auth", func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(7))
		return c.Next()
	})
	handler.NewAuthHandler(svc, zerolog.New(io.Discard)).RegisterProtected(group)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(body, target))
}
