package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pawtopia/petshop-api/internal/auth"
	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/repository"
)

const oauthProviderName = "oauth2"

// GoogleIdentity carries the verified claims handed back by the provider
// after a completed handshake.
type GoogleIdentity struct {
	Email   string
	Name    string
	Subject string
}

// OAuthService maps external identities to local customer accounts and issues
// local tokens in the same format as password login.
type OAuthService struct {
	customers  repository.CustomerRepository
	carts      repository.CartRepository
	tokens     *auth.TokenService
	bcryptCost int
	logger     *zap.Logger
}

// NewOAuthService builds the service.
func NewOAuthService(customers repository.CustomerRepository, carts repository.CartRepository,
	tokens *auth.TokenService, bcryptCost int, logger *zap.Logger) *OAuthService {
	return &OAuthService{
		customers:  customers,
		carts:      carts,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Login upserts the local account for a verified external identity and issues
// a token carrying the identity claims. First login creates the customer with
// an empty cart; a later login attaches the provider id if missing; once
// linked, no store writes happen.
func (s *OAuthService) Login(ctx context.Context, identity GoogleIdentity) (*domain.Customer, string, time.Time, error) {
	customer, err := s.customers.GetByEmail(ctx, identity.Email)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		customer, err = s.provision(ctx, identity)
		if err != nil {
			return nil, "", time.Time{}, err
		}
	case err != nil:
		return nil, "", time.Time{}, err
	case customer.GoogleID == nil:
		googleID := identity.Subject
		provider := oauthProviderName
		customer.GoogleID = &googleID
		customer.AuthProvider = &provider
		if err := s.customers.Update(ctx, customer); err != nil {
			return nil, "", time.Time{}, err
		}
		s.logger.Info("linked external identity to existing account",
			zap.String("email", identity.Email), zap.Int64("customer_id", customer.ID))
	}

	extraClaims := map[string]any{
		"email":         identity.Email,
		"name":          identity.Name,
		"auth_provider": oauthProviderName,
		"googleId":      identity.Subject,
		"userId":        customer.ID,
		"role":          string(customer.Role), // recomputed at issuance; admin lookup wins
	}

	token, exp, err := s.tokens.Issue(ctx, customer.Username, extraClaims)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return customer, token, exp, nil
}

func (s *OAuthService) provision(ctx context.Context, identity GoogleIdentity) (*domain.Customer, error) {
	username, err := s.deriveUsername(ctx, identity.Email)
	if err != nil {
		return nil, err
	}
	first, last := splitDisplayName(identity.Name)

	// The account is unusable for password login: the stored hash is of a
	// random secret that is never disclosed.
	randomSecret, err := auth.RandomPassword()
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(randomSecret, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	googleID := identity.Subject
	provider := oauthProviderName
	customer := &domain.Customer{
		Username:     username,
		PasswordHash: hash,
		FirstName:    first,
		LastName:     last,
		Email:        identity.Email,
		Role:         domain.RoleCustomer,
		GoogleID:     &googleID,
		AuthProvider: &provider,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	if err := s.carts.Create(ctx, customer.ID); err != nil {
		return nil, err
	}

	s.logger.Info("provisioned customer from external identity",
		zap.String("username", username), zap.Int64("customer_id", customer.ID))
	return customer, nil
}

// deriveUsername takes the email's local part and disambiguates with an
// incrementing numeric suffix until unique.
func (s *OAuthService) deriveUsername(ctx context.Context, email string) (string, error) {
	base := email
	if at := strings.Index(email, "@"); at > 0 {
		base = email[:at]
	}

	candidate := base
	for suffix := 1; ; suffix++ {
		exists, err := s.customers.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, suffix)
	}
}

// splitDisplayName splits at the first whitespace boundary; a name with no
// whitespace becomes the first name with an empty last name.
func splitDisplayName(name string) (string, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ""
	}
	if idx := strings.IndexFunc(trimmed, func(r rune) bool { return r == ' ' || r == '\t' }); idx > 0 {
		return trimmed[:idx], strings.TrimSpace(trimmed[idx+1:])
	}
	return trimmed, ""
}
