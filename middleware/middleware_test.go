package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestErrorResponseMapsKinds(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return ErrorResponse(c, apperror.Conflict("email", "Email is already registered!"))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pq: connection refused")
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	code, body := decode(t, app, "/conflict")
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "email", body["data"].(map[string]interface{})["field"])

	code, body = decode(t, app, "/boom")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["message"])

	code, _ = decode(t, app, "/fiber")
	assert.Equal(t, fiber.StatusTeapot, code)
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(c.Locals(RequestIDKey).(string)) })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(RequestIDHeader), 36)
}

func TestResetRequestLimiter(t *testing.T) {
	app := fiber.New()
	app.Post("/reset", ResetRequestLimiter(1, time.Minute), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("POST", "/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestErrorResponseLogsServerKind(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	app := fiber.New()
	app.Use(RequestID())
	app.Get("/disk", func(c *fiber.Ctx) error {
		return ErrorResponse(c, apperror.Storage(errors.New("no space left"), "Failed to save file"))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return ErrorResponse(c, apperror.NotFound("Course not found"))
	})

	code, body := decode(t, app, "/disk")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "Failed to save file", body["message"])
	assert.Contains(t, buf.String(), "storage")
	assert.Contains(t, buf.String(), "no space left")

	buf.Reset()
	code, _ = decode(t, app, "/missing")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Empty(t, buf.String())
}
