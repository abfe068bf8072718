package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestApp(buf *bytes.Buffer) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	app := fiber.New()
	app.Use(New(Config{
		Logger:    logger,
		Tags:      []string{TagStatus, TagMethod, TagPath, TagBody},
		SkipPaths: ConfigDefault.SkipPaths,
	}))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/auth/login", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/vacancy/list", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).SendString("fail")
	})
	return app
}

func TestLogger(t *testing.T) {
	t.Run(`request fields`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		app := newTestApp(buf)
		req := httptest.NewRequest(fiber.MethodPost, "/vacancy/list", strings.NewReader(`{"search":"go"}`))
		_, err := app.Test(req)
		require.Nil(t, err)

		entry := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "warning", entry["level"])
		require.Equal(t, "/vacancy/list", entry[TagPath])
		require.Equal(t, fiber.MethodPost, entry[TagMethod])
		require.Equal(t, float64(fiber.StatusBadRequest), entry[TagStatus])
		require.Equal(t, `{"search":"go"}`, entry[TagBody])
	})

	t.Run(`auth body hidden`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		app := newTestApp(buf)
		req := httptest.NewRequest(fiber.MethodPost, "/auth/login", strings.NewReader(`{"password":"secret"}`))
		_, err := app.Test(req)
		require.Nil(t, err)
		require.NotContains(t, buf.String(), "secret")
	})

	t.Run(`health check not logged`, func(t *testing.T) {
		buf := new(bytes.Buffer)
		app := newTestApp(buf)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Empty(t, buf.String())
	})
}
