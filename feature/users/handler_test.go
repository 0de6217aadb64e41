package users

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"user-service/core/middleware/errorhandler"
	"user-service/feature/users/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	logger := zap.NewNop()
	app := fiber.New(fiber.Config{ErrorHandler: errorhandler.New(logger)})
	feature := NewFeature(setupSQLite(t), logger)
	require.NoError(t, feature.Load(app))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHandlers_CRUD(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/users", `{"name":"alice","email":"alice@example.com"}`)
	require.Equal(t, 201, status, string(body))
	var created models.User
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	status, body = doJSON(t, app, "GET", "/api/users", "")
	assert.Equal(t, 200, status)
	var list []models.User
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 1)

	status, body = doJSON(t, app, "PUT", "/api/users/1", `{"email":"alice@corp.example"}`)
	require.Equal(t, 200, status, string(body))
	var updated models.User
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "alice", updated.Name)
	assert.Equal(t, "alice@corp.example", updated.Email)

	status, _ = doJSON(t, app, "GET", "/api/users/1", "")
	assert.Equal(t, 200, status)

	status, _ = doJSON(t, app, "DELETE", "/api/users/1", "")
	assert.Equal(t, 204, status)

	status, body = doJSON(t, app, "GET", "/api/users/1", "")
	assert.Equal(t, 404, status)
	assert.JSONEq(t, `{"error":"record not found"}`, string(body))
}

func TestHandlers_Errors(t *testing.T) {
	app := setupTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/users", `{"name":"bob","email":"bob@example.com"}`)
	require.Equal(t, 201, status)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"Missing Name", "POST", "/api/users", `{"email":"x@example.com"}`, 400, "User validation failed: name: User name is required"},
		{"Missing Email", "POST", "/api/users", `{"name":"x"}`, 400, "User validation failed: email: Email is required"},
		{"Duplicate Name", "POST", "/api/users", `{"name":"bob","email":"x@example.com"}`, 409, "duplicate key: name already exists"},
		{"Duplicate Email", "POST", "/api/users", `{"name":"x","email":"bob@example.com"}`, 409, "duplicate key: email already exists"},
		{"Malformed Body", "POST", "/api/users", `{"name":`, 400, "invalid request body"},
		{"Invalid ID", "GET", "/api/users/abc", "", 400, "invalid user id"},
		{"Update Missing", "PUT", "/api/users/99", `{"name":"y"}`, 404, "record not found"},
		{"Update Empty Name", "PUT", "/api/users/1", `{"name":""}`, 400, "User validation failed: name: User name is required"},
		{"Delete Missing", "DELETE", "/api/users/99", "", 404, "record not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, status, string(body))

			var resp errorhandler.Response
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}

	// The rejected writes left bob untouched.
	status, body := doJSON(t, app, "GET", "/api/users/1", "")
	require.Equal(t, 200, status)
	var bob models.User
	require.NoError(t, json.Unmarshal(body, &bob))
	assert.Equal(t, "bob", bob.Name)
	assert.Equal(t, "bob@example.com", bob.Email)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(setupSQLite(t), zap.NewNop())
	assert.Equal(t, "users", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
