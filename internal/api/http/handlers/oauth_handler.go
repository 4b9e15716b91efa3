package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pawtopia/petshop-api/internal/auth"
	"github.com/pawtopia/petshop-api/internal/service"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// OAuthHandler drives the browser-facing Google login flow.
type OAuthHandler struct {
	google      *auth.GoogleClient
	states      *auth.StateStore
	oauth       *service.OAuthService
	frontendURL string
	logger      *zap.Logger
}

// NewOAuthHandler constructs handler.
func NewOAuthHandler(google *auth.GoogleClient, states *auth.StateStore,
	oauth *service.OAuthService, frontendURL string, logger *zap.Logger) *OAuthHandler {
	return &OAuthHandler{
		google:      google,
		states:      states,
		oauth:       oauth,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// Authorize handles GET /oauth2/authorization/google: it issues a one-time
// state nonce and redirects the browser to the provider.
func (h *OAuthHandler) Authorize(c *fiber.Ctx) error {
	state, err := h.states.Issue(c.UserContext())
	if err != nil {
		return err
	}
	return c.Redirect(h.google.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// Callback handles GET /login/oauth2/code/google: it consumes the state,
// trades the code for the user's profile, upserts the local account and hands
// the issued token to the front end via the redirect query and the
// Authorization response header.
func (h *OAuthHandler) Callback(c *fiber.Ctx) error {
	ok, err := h.states.Consume(c.UserContext(), c.Query("state"))
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewUnauthorized("invalid or expired oauth state")
	}

	code := c.Query("code")
	if code == "" {
		return apperrors.NewValidationError("missing authorization code", nil)
	}

	profile, err := h.google.Exchange(c.UserContext(), code)
	if err != nil {
		return err
	}

	customer, token, _, err := h.oauth.Login(c.UserContext(), service.GoogleIdentity{
		Email:   profile.Email,
		Name:    profile.Name,
		Subject: profile.Subject,
	})
	if err != nil {
		return err
	}

	h.logger.Info("oauth login completed",
		zap.String("username", customer.Username), zap.Int64("customer_id", customer.ID))

	c.Set("Authorization", "Bearer "+token)

	redirect := h.frontendURL + "/oauth-success?token=" + url.QueryEscape(token)
	if customer.GoogleID != nil {
		redirect += "&googleId=" + url.QueryEscape(*customer.GoogleID)
	}
	return c.Redirect(redirect, fiber.StatusTemporaryRedirect)
}
