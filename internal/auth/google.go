package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/pawtopia/petshop-api/internal/config"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// GoogleProfile is the subset of the userinfo document the login flow needs.
type GoogleProfile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Subject string `json:"sub"`
}

// GoogleClient drives the authorization-code handshake against Google.
type GoogleClient struct {
	conf        *oauth2.Config
	userInfoURL string
}

// NewGoogleClient builds the client from configuration.
func NewGoogleClient(cfg config.OAuthConfig) *GoogleClient {
	return &GoogleClient{
		conf: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		userInfoURL: cfg.UserInfoURL,
	}
}

// AuthCodeURL returns the provider URL to redirect the browser to.
func (g *GoogleClient) AuthCodeURL(state string) string {
	return g.conf.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for a token and fetches the user's
// profile.
func (g *GoogleClient) Exchange(ctx context.Context, code string) (*GoogleProfile, error) {
	token, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.NewUpstreamError("oauth code exchange failed", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.conf.Client(ctx, token).Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("oauth userinfo request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError(
			fmt.Sprintf("oauth userinfo returned status %d", resp.StatusCode), nil)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, apperrors.NewUpstreamError("oauth userinfo returned malformed response", err)
	}
	if profile.Email == "" {
		return nil, apperrors.NewUpstreamError("oauth userinfo missing email", nil)
	}
	return &profile, nil
}
