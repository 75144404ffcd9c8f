package bootstrap

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/soilfarming/soil-agent/config"
	"github.com/soilfarming/soil-agent/internal/adapters/authroles"
	"github.com/soilfarming/soil-agent/internal/adapters/devauth"
	"github.com/soilfarming/soil-agent/internal/adapters/oidc"
	"github.com/soilfarming/soil-agent/internal/adapters/pgident"
	redisadapter "github.com/soilfarming/soil-agent/internal/adapters/redis"
	"github.com/soilfarming/soil-agent/internal/data"
	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
	"github.com/soilfarming/soil-agent/internal/ports"
	"github.com/soilfarming/soil-agent/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service for the configured auth mode.
// Every route in the application sits behind a session check, so a broken
// auth configuration is a startup error rather than a degraded mode.
func BuildAuthService(cfg AuthConfig) (*service.AuthService, error) {
	if cfg.DB == nil {
		return nil, errors.New("auth service requires a database connection")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("auth service requires a redis client")
	}

	users := data.NewUserRepo(cfg.DB)

	opts := service.AuthServiceOptions{
		Sessions:   redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:"),
		Resolver:   service.NewProfileRoleResolver(users),
		Roles:      authroles.StaticRoleMapper{AdminGroup: cfg.Auth.OIDC.AdminGroup},
		Users:      users,
		SessionTTL: cfg.Auth.SessionTTL,
		Logger:     cfg.Logger,
	}

	switch cfg.Auth.Mode {
	case config.AuthModePassword:
		opts.Identity = pgident.NewProvider(data.NewCredentialRepo(cfg.DB), cfg.Auth.Password)

	case config.AuthModeOIDC:
		redirect, err := buildOIDCProvider(cfg.Auth.OIDC)
		if err != nil {
			return nil, err
		}
		opts.Redirect = redirect

	case config.AuthModeMock:
		redirect, err := devauth.NewProvider(devauth.Config{
			UserID: cfg.Auth.DevAuth.UserID,
			Email:  cfg.Auth.DevAuth.Email,
			Name:   cfg.Auth.DevAuth.Name,
			Role:   domainauth.Role(cfg.Auth.DevAuth.Role),
		})
		if err != nil {
			return nil, fmt.Errorf("create dev auth provider: %w", err)
		}
		opts.Redirect = redirect

	default:
		return nil, fmt.Errorf("unsupported auth mode %q", cfg.Auth.Mode)
	}

	svc, err := service.NewAuthService(opts)
	if err != nil {
		return nil, fmt.Errorf("create auth service: %w", err)
	}
	return svc, nil
}

//nolint:ireturn // the redirect provider is consumed through its port.
func buildOIDCProvider(cfg config.OIDCConfig) (ports.RedirectAuthProvider, error) {
	if cfg.DiscoveryURL == "" {
		return nil, errors.New("oidc auth mode requires OIDC_DISCOVERY_URL")
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scope:        cfg.Scope,
		DiscoveryURL: cfg.DiscoveryURL,
		LogoutURL:    cfg.LogoutURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create oidc provider: %w", err)
	}
	return prov, nil
}
