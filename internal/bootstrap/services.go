package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/soilfarming/soil-agent/config"
	"github.com/soilfarming/soil-agent/internal/data"
	"github.com/soilfarming/soil-agent/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Soil         *service.SoilService
	Distributors *service.DistributorService
	Auth         *service.AuthService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	Users        *data.UserRepo
	Soil         *data.SoilRepo
	Distributors *data.DistributorRepo
}

func buildRepositories(db *sql.DB) *serviceRepositories {
	return &serviceRepositories{
		Users:        data.NewUserRepo(db),
		Soil:         data.NewSoilRepo(db),
		Distributors: data.NewDistributorRepo(db),
	}
}

// BuildServices constructs the full service container from shared
// dependencies.
func BuildServices(deps ServiceDeps) (ServiceContainer, error) {
	if deps.Config == nil {
		return ServiceContainer{}, fmt.Errorf("service config is required")
	}
	if deps.DB == nil {
		return ServiceContainer{}, fmt.Errorf("database connection is required")
	}

	repos := buildRepositories(deps.DB)

	soilSvc, err := service.NewSoilService(service.SoilServiceOptions{Repo: repos.Soil})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create soil service: %w", err)
	}

	distSvc, err := service.NewDistributorService(service.DistributorServiceOptions{Repo: repos.Distributors})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create distributor service: %w", err)
	}

	authSvc, err := BuildAuthService(AuthConfig{
		Auth:        deps.Config.Auth,
		DB:          deps.DB,
		RedisClient: deps.RedisClient,
		Logger:      deps.Logger,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	return ServiceContainer{
		Soil:         soilSvc,
		Distributors: distSvc,
		Auth:         authSvc,
	}, nil
}
