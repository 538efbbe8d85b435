package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/santoso/visitor-gate/internal/domain"
	"github.com/santoso/visitor-gate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ts := testutil.NewTestServer(t)

	user, password := testutil.NewUserBuilder().
		WithRole(domain.RoleAdmin).
		Build(t, ts.DB.DB)

	postLogin := func(t *testing.T, payload map[string]string) *http.Response {
		t.Helper()
		body, _ := json.Marshal(payload)
		resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
		require.NoError(t, err)
		return resp
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		resp := postLogin(t, map[string]string{"email": user.Email, "password": password})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var envelope struct {
			Success bool `json:"success"`
			Data    struct {
				Token string `json:"token"`
				Role  string `json:"role"`
				User  struct {
					ID    string `json:"id"`
					Email string `json:"email"`
				} `json:"user"`
			} `json:"data"`
		}
		testutil.DecodeJSON(t, resp, &envelope)

		assert.True(t, envelope.Success)
		assert.NotEmpty(t, envelope.Data.Token)
		assert.Equal(t, "ADMIN", envelope.Data.Role)
		assert.Equal(t, user.ID.String(), envelope.Data.User.ID)
		assert.Equal(t, user.Email, envelope.Data.User.Email)
	})

	t.Run("response never carries the password hash", func(t *testing.T) {
		resp := postLogin(t, map[string]string{"email": user.Email, "password": password})
		defer resp.Body.Close()

		var raw map[string]any
		testutil.DecodeJSON(t, resp, &raw)

		userPayload := raw["data"].(map[string]any)["user"].(map[string]any)
		_, hasPassword := userPayload["password"]
		_, hasHash := userPayload["passwordHash"]
		assert.False(t, hasPassword)
		assert.False(t, hasHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postLogin(t, map[string]string{"email": user.Email, "password": "wrongpassword"})
		defer resp.Body.Close()

		testutil.AssertEnvelopeError(t, resp, http.StatusUnauthorized, "Invalid credentials")
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := postLogin(t, map[string]string{"email": "nobody@example.com", "password": password})
		defer resp.Body.Close()

		testutil.AssertEnvelopeError(t, resp, http.StatusUnauthorized, "Invalid credentials")
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postLogin(t, map[string]string{"email": user.Email})
		defer resp.Body.Close()

		testutil.AssertEnvelopeError(t, resp, http.StatusBadRequest, "Email and password are required")
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBufferString("{not json"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertEnvelopeError(t, resp, http.StatusBadRequest, "Invalid JSON payload")
	})

	t.Run("oversized body", func(t *testing.T) {
		// A single string value longer than the body cap forces the decoder
		// to read past the limit instead of failing on syntax first.
		payload := append([]byte(`{"email":"`), bytes.Repeat([]byte("a"), int(ts.Config.MaxBodyBytes))...)

		resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertEnvelopeError(t, resp, http.StatusRequestEntityTooLarge, "Request body too large")
	})
}

func TestAuthorizationGate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ts := testutil.NewTestServer(t)

	superuser, superPassword := testutil.NewUserBuilder().WithRole(domain.RoleSuperuser).Build(t, ts.DB.DB)
	receptionist, recepPassword := testutil.NewUserBuilder().WithRole(domain.RoleReceptionist).Build(t, ts.DB.DB)

	superToken := testutil.Login(t, ts, superuser.Email, superPassword)
	recepToken := testutil.Login(t, ts, receptionist.Email, recepPassword)

	get := func(t *testing.T, path, token string) *http.Response {
		t.Helper()
		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL(path), nil, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("no token", func(t *testing.T) {
		resp := get(t, "/devices", "")
		defer resp.Body.Close()

		testutil.AssertEnvelopeError(t, resp, http.StatusUnauthorized, "Authorization header required")
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := get(t, "/devices", "not-a-real-token")
		defer resp.Body.Close()

		testutil.AssertEnvelopeError(t, resp, http.StatusUnauthorized, "Invalid token")
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub":  superuser.ID.String(),
			"role": "SUPERUSER",
			"iat":  time.Now().Add(-2 * time.Hour).Unix(),
			"exp":  time.Now().Add(-time.Hour).Unix(),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Config.JWTSecret))
		require.NoError(t, err)

		resp := get(t, "/devices", expired)
		defer resp.Body.Close()

		testutil.AssertEnvelopeError(t, resp, http.StatusUnauthorized, "Token expired")
	})

	t.Run("authentication happens before the role check", func(t *testing.T) {
		resp := get(t, "/users", "not-a-real-token")
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("receptionist cannot manage devices", func(t *testing.T) {
		resp := get(t, "/devices", recepToken)
		defer resp.Body.Close()

		testutil.AssertEnvelopeError(t, resp, http.StatusForbidden, "Forbidden")
	})

	t.Run("superuser can manage devices", func(t *testing.T) {
		resp := get(t, "/devices", superToken)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
	})

	t.Run("receptionist can list visitors", func(t *testing.T) {
		resp := get(t, "/visitors", recepToken)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
	})
}
