package cmd

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"user-service/core/config"
	"user-service/core/database"
	"user-service/core/middleware/auth"
	"user-service/core/middleware/rayid"
	"user-service/core/server"
	"user-service/feature/users"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:   server.Config{Port: "0", Environment: server.EnvironmentDevelopment},
		Database: database.Config{Driver: database.DriverSQLite, Name: ":memory:"},
	}
}

func TestMountRoutes(t *testing.T) {
	cfg := testConfig()
	logg := zap.NewNop()
	db, err := connectDatabase(cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	_, err = users.NewSeeder(users.NewRepository(db), logg).InsertSampleUsers(context.Background())
	require.NoError(t, err)

	app := newApp(logg)
	require.NoError(t, mountRoutes(app, db, cfg, logg))

	t.Run("Products", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "This is new feature change, a new route for products samin", body["message"])
	})

	t.Run("Seeded Users", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/users", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var list []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		assert.Len(t, list, 4)
	})

	t.Run("Unknown Route", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/orders", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Cannot GET /api/orders", body["error"])
	})
}

func TestMountRoutes_APIKey(t *testing.T) {
	cfg := testConfig()
	cfg.Server.ApiKey = "secret"
	logg := zap.NewNop()
	db, err := connectDatabase(cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	app := newApp(logg)
	require.NoError(t, mountRoutes(app, db, cfg, logg))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set(auth.HeaderName, "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRunServer_ConnectionFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Database = database.Config{
		Driver:         database.DriverMySQL,
		Host:           "127.0.0.1",
		Port:           9999,
		User:           "root",
		Name:           "users",
		TimeoutSeconds: 1,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := runServer(ctx, cfg, zap.NewNop())
	assert.ErrorIs(t, err, database.ErrConnection)
}

func TestRunServer_Shutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServer(ctx, testConfig(), zap.NewNop()) }()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
