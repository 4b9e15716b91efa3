package auth

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

func newGateApp(ts *TokenService) *fiber.App {
	app := fiber.New()
	// Map domain errors to their status so assertions can see 401 vs 500.
	app.Use(func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			var domainErr *apperrors.DomainError
			if errors.As(err, &domainErr) {
				return c.SendStatus(domainErr.HTTPStatus)
			}
			return err
		}
		return nil
	})
	app.Use(NewGate(ts).Handle)
	app.Get("/probe", func(c *fiber.Ctx) error {
		if session, ok := SessionFromContext(c); ok {
			return c.SendString("user:" + session.Username)
		}
		return c.SendString("anonymous")
	})
	return app
}

func TestGatePassesRequestsWithoutToken(t *testing.T) {
	ts := NewTokenService("secret", time.Hour, memDirectory{}, memDirectory{}, zap.NewNop())
	app := newGateApp(ts)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestGateAttachesSessionForValidToken(t *testing.T) {
	ts := NewTokenService("secret", time.Hour, memDirectory{}, memDirectory{"jess": true}, zap.NewNop())
	app := newGateApp(ts)

	token, _, err := ts.Issue(context.Background(), "jess", nil)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	buf := make([]byte, 64)
	n, _ := resp.Body.Read(buf)
	assert.Equal(t, "user:jess", string(buf[:n]))
}

func TestGateRejectsMalformedHeader(t *testing.T) {
	ts := NewTokenService("secret", time.Hour, memDirectory{}, memDirectory{}, zap.NewNop())
	app := newGateApp(ts)

	for _, header := range []string{"Bearer", "Token abc", "abc"} {
		req := httptest.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode, header)
	}
}

func TestGateRejectsInvalidToken(t *testing.T) {
	ts := NewTokenService("secret", time.Hour, memDirectory{}, memDirectory{}, zap.NewNop())
	app := newGateApp(ts)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
