// Package testutils provides helpers for exercising the HTTP surface in
// tests: an app backed by an in-memory database and signed bearer tokens.
package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	infrarepo "github.com/corebanq/dbank/infra/repository"
	"github.com/corebanq/dbank/pkg/config"
	"github.com/corebanq/dbank/pkg/repository"
	"github.com/corebanq/dbank/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestSecret signs the tokens used in tests.
const TestSecret = "test-secret"

// NewApp builds the full Fiber application over an in-memory sqlite
// database.
func NewApp(t *testing.T) (*fiber.App, repository.UnitOfWork) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(infrarepo.Models()...))

	cfg := &config.App{
		Env: "test",
		Jwt: config.JwtConfig{Secret: TestSecret},
	}
	uow := infrarepo.NewUnitOfWork(db)
	app := webapi.SetupApp(uow, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return app, uow
}

// Token signs a bearer token carrying the given subject and role.
func Token(t *testing.T, subject, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(TestSecret))
	require.NoError(t, err)
	return signed
}

// Request performs an in-process request against the app.
func Request(t *testing.T, app *fiber.App, method, target, body, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
