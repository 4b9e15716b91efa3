package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pawtopia/petshop-api/internal/auth"
	"github.com/pawtopia/petshop-api/internal/config"
	"github.com/pawtopia/petshop-api/internal/domain"
	"github.com/pawtopia/petshop-api/internal/repository"
	apperrors "github.com/pawtopia/petshop-api/pkg/util"
)

// AuthService coordinates signup and the two password login flows.
type AuthService struct {
	admins     repository.AdminRepository
	customers  repository.CustomerRepository
	carts      repository.CartRepository
	tokens     *auth.TokenService
	bcryptCost int
	defaults   config.AuthConfig
	logger     *zap.Logger
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	AdminRepo    repository.AdminRepository
	CustomerRepo repository.CustomerRepository
	CartRepo     repository.CartRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies, logger *zap.Logger) *AuthService {
	return &AuthService{
		admins:     deps.AdminRepo,
		customers:  deps.CustomerRepo,
		carts:      deps.CartRepo,
		tokens:     auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), deps.AdminRepo, deps.CustomerRepo, logger),
		bcryptCost: cfg.Auth.BcryptCost,
		defaults:   cfg.Auth,
		logger:     logger,
	}
}

// Signup registers a new customer and provisions its empty cart.
func (s *AuthService) Signup(ctx context.Context, customer *domain.Customer, password string) (*domain.Customer, error) {
	exists, err := s.customers.ExistsByUsername(ctx, customer.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict("Username already registered!", nil)
	}

	if customer.Role == "" {
		customer.Role = domain.RoleCustomer
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	customer.PasswordHash = hash

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	if err := s.carts.Create(ctx, customer.ID); err != nil {
		return nil, err
	}
	return customer, nil
}

// ResolveAccount looks up the account variant named by kind. The kind is an
// explicit argument chosen by the login endpoint, never ambient state: the two
// variants live in separate stores with no shared key space.
func (s *AuthService) ResolveAccount(ctx context.Context, kind domain.AccountKind, username string) (domain.Account, error) {
	switch kind {
	case domain.AccountKindAdmin:
		admin, err := s.admins.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		return admin, nil
	case domain.AccountKindCustomer:
		customer, err := s.customers.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		return customer, nil
	default:
		return nil, errors.New("unknown account kind")
	}
}

// Login verifies credentials against the store selected by kind and issues a
// bearer token on success.
func (s *AuthService) Login(ctx context.Context, kind domain.AccountKind, username, password string) (domain.Account, string, time.Time, error) {
	account, err := s.ResolveAccount(ctx, kind, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}

	if err := auth.ComparePassword(account.AccountPasswordHash(), password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokens.Issue(ctx, username, nil)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// CreateAdmin registers a new admin account.
func (s *AuthService) CreateAdmin(ctx context.Context, username, password string) (*domain.Admin, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	admin := &domain.Admin{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// ListAdmins returns every back-office account.
func (s *AuthService) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	return s.admins.List(ctx)
}

// UpdateAdmin renames an admin account and/or rotates its password. Empty
// fields leave the stored value untouched.
func (s *AuthService) UpdateAdmin(ctx context.Context, id int64, username, password string) (*domain.Admin, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if username != "" && username != admin.Username {
		exists, err := s.admins.ExistsByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.NewConflict("Username already registered!", nil)
		}
		admin.Username = username
	}
	if password != "" {
		hash, err := auth.HashPassword(password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}

	if err := s.admins.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// DeleteAdmin removes an admin account.
func (s *AuthService) DeleteAdmin(ctx context.Context, id int64) error {
	return s.admins.Delete(ctx, id)
}

// EnsureDefaultAdmin creates the bootstrap admin account when absent. Called
// once at process start; idempotent.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	exists, err := s.admins.ExistsByUsername(ctx, s.defaults.DefaultAdminUsername)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if _, err := s.CreateAdmin(ctx, s.defaults.DefaultAdminUsername, s.defaults.DefaultAdminPassword); err != nil {
		return err
	}
	s.logger.Info("default admin created", zap.String("username", s.defaults.DefaultAdminUsername))
	return nil
}

// TokenService exposes the underlying token service for middleware usage.
func (s *AuthService) TokenService() *auth.TokenService {
	return s.tokens
}
