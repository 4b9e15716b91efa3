package auth

import (
	"context"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/pawtopia/petshop-api/internal/domain"
)

// Directory answers username-existence checks against one credential store.
// Both account repositories satisfy it.
type Directory interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// TokenService issues and validates the process-wide bearer tokens. Every
// token of every role is signed with the same symmetric key; invalidation is
// time-only (no revocation list).
type TokenService struct {
	secret    []byte
	ttl       time.Duration
	admins    Directory
	customers Directory
	logger    *zap.Logger
	now       func() time.Time
}

// NewTokenService builds the service. ttl is the fixed token lifetime.
func NewTokenService(secret string, ttl time.Duration, admins, customers Directory, logger *zap.Logger) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret:    []byte(secret),
		ttl:       ttl,
		admins:    admins,
		customers: customers,
		logger:    logger,
		now:       time.Now,
	}
}

// Issue signs a token for the username. The role claim is resolved admin-first:
// a username present in the admin store claims ADMIN even if it also exists as
// a customer (the two namespaces carry no cross-uniqueness constraint). A
// username found in neither store still gets a token, just without a role
// claim. extraClaims are merged in; the computed role always wins over any
// caller-supplied role.
func (ts *TokenService) Issue(ctx context.Context, username string, extraClaims map[string]any) (string, time.Time, error) {
	claims := jwt.MapClaims{}
	for k, v := range extraClaims {
		claims[k] = v
	}

	isAdmin, err := ts.admins.ExistsByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, err
	}
	isCustomer, err := ts.customers.ExistsByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, err
	}

	switch {
	case isAdmin && isCustomer:
		// Coincidental collision across the two namespaces; admin wins.
		ts.logger.Warn("username exists in both admin and customer stores", zap.String("username", username))
		claims["role"] = string(domain.RoleAdmin)
	case isAdmin:
		claims["role"] = string(domain.RoleAdmin)
	case isCustomer:
		claims["role"] = string(domain.RoleCustomer)
	}

	issuedAt := ts.now()
	expiresAt := issuedAt.Add(ts.ttl)
	claims["sub"] = username
	claims["iat"] = jwt.NewNumericDate(issuedAt)
	claims["exp"] = jwt.NewNumericDate(expiresAt)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate reports whether the token's signature verifies, its subject equals
// expectedUsername and its expiry has not passed.
func (ts *TokenService) Validate(tokenStr, expectedUsername string) bool {
	claims, err := ts.parse(tokenStr)
	if err != nil {
		return false
	}
	subject, err := claims.GetSubject()
	return err == nil && subject == expectedUsername
}

// ExtractSubject decodes the subject claim; invalid signatures surface as errors.
func (ts *TokenService) ExtractSubject(tokenStr string) (string, error) {
	claims, err := ts.parse(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.GetSubject()
}

// ExtractRole decodes the role claim; a missing claim returns nil without error.
func (ts *TokenService) ExtractRole(tokenStr string) (*domain.Role, error) {
	claims, err := ts.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	return roleClaim(claims), nil
}

// Authenticate decodes a token into the transient session attached to one
// request.
func (ts *TokenService) Authenticate(tokenStr string) (*domain.AuthSession, error) {
	claims, err := ts.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return nil, err
	}
	return &domain.AuthSession{Username: subject, Role: roleClaim(claims)}, nil
}

func (ts *TokenService) parse(tokenStr string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return ts.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return ts.now() }))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func roleClaim(claims jwt.MapClaims) *domain.Role {
	raw, ok := claims["role"].(string)
	if !ok || raw == "" {
		return nil
	}
	role := domain.Role(raw)
	return &role
}
