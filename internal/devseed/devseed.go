// Package devseed populates a development database with demo accounts and
// reference data. It is wired into the admin CLI only and must never run
// against production.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/soilfarming/soil-agent/internal/data"
	domainauth "github.com/soilfarming/soil-agent/internal/domain/auth"
	"github.com/soilfarming/soil-agent/internal/domain/model"
)

// DemoPassword is the password every seeded account gets.
const DemoPassword = "soil-agent-dev"

// devBcryptCost keeps seeding fast; these hashes protect nothing real.
const devBcryptCost = 4

// Repos bundles the data adapters needed for seeding.
type Repos struct {
	Users        *data.UserRepo
	Credentials  *data.CredentialRepo
	Soil         *data.SoilRepo
	Distributors *data.DistributorRepo
}

// NewRepos constructs the repositories for seeding using the provided DB.
func NewRepos(db *sql.DB) Repos {
	return Repos{
		Users:        data.NewUserRepo(db),
		Credentials:  data.NewCredentialRepo(db),
		Soil:         data.NewSoilRepo(db),
		Distributors: data.NewDistributorRepo(db),
	}
}

type seedAccount struct {
	ID    string
	Email string
	Name  string
	Role  domainauth.Role
}

var seedAccounts = []seedAccount{
	{ID: "00000000-0000-4000-8000-000000000001", Email: "admin@soilagent.dev", Name: "Demo Admin", Role: domainauth.RoleAdmin},
	{ID: "00000000-0000-4000-8000-000000000002", Email: "farmer@soilagent.dev", Name: "Demo Farmer", Role: domainauth.RoleFarmer},
}

var seedSoilRecords = []model.CreateSoilRecordRequest{
	{
		SoilType:        "Alluvial",
		Characteristics: "Rich in humus and potash, deposited by rivers across the northern plains",
		BestCrops:       "Rice, Wheat, Sugarcane, Jute",
		PHLevel:         "6.5 - 7.5",
	},
	{
		SoilType:        "Black",
		Characteristics: "Clayey, moisture retentive, self ploughing when dry, rich in iron and lime",
		BestCrops:       "Cotton, Soybean, Millets",
		PHLevel:         "7.2 - 8.5",
	},
	{
		SoilType:        "Red",
		Characteristics: "Porous and friable, poor in nitrogen and phosphorus, responds well to fertilizers",
		BestCrops:       "Groundnut, Potato, Ragi",
		PHLevel:         "5.5 - 6.8",
	},
	{
		SoilType:        "Laterite",
		Characteristics: "Formed under heavy rainfall with intense leaching, acidic and low in fertility",
		BestCrops:       "Tea, Coffee, Cashew, Rubber",
		PHLevel:         "4.5 - 6.0",
	},
}

var seedDistributors = []model.CreateDistributorRecordRequest{
	{
		Name:     "GreenGrow Supplies",
		Contact:  "+91 98765 43210",
		Location: "Pune, Maharashtra",
		Type:     model.DistributorTypePrivate,
		Products: "Seeds, Fertilizers, Pesticides",
	},
	{
		Name:     "State Agro Board",
		Contact:  "1800-110-001",
		Location: "Lucknow, Uttar Pradesh",
		Type:     model.DistributorTypeGovernment,
		Products: "Subsidized seeds, Soil testing kits",
	},
	{
		Name:     "FarmLine Traders",
		Contact:  "+91 91234 56789",
		Location: "Coimbatore, Tamil Nadu",
		Type:     model.DistributorTypePrivate,
		Products: "Drip irrigation, Organic manure, Tools",
	},
}

// Run executes the full development seeding workflow against the provided
// repositories. Seeding is idempotent: existing accounts are kept and
// reference data is only inserted when the admin has none.
func Run(ctx context.Context, repos Repos, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	adminID := ""
	for _, account := range seedAccounts {
		id, err := seedAccountProfile(ctx, repos, account, logger)
		if err != nil {
			return err
		}
		if account.Role == domainauth.RoleAdmin && adminID == "" {
			adminID = id
		}
	}

	if adminID == "" {
		return errors.New("no admin account seeded")
	}

	if err := seedReferenceData(ctx, repos, adminID, logger); err != nil {
		return err
	}

	logger.InfoContext(ctx, "development seed complete",
		"accounts", len(seedAccounts),
		"password", DemoPassword,
	)
	return nil
}

// seedAccountProfile creates the profile plus its credential. Existing
// accounts are left untouched so repeated seeding keeps manual edits.
func seedAccountProfile(ctx context.Context, repos Repos, account seedAccount, logger *slog.Logger) (string, error) {
	existing, err := repos.Users.GetByEmail(ctx, account.Email)
	if err == nil {
		logger.InfoContext(ctx, "account already seeded", "email", account.Email)
		return existing.ID, nil
	}
	if !errors.Is(err, data.ErrUserNotFound) {
		return "", fmt.Errorf("look up %s: %w", account.Email, err)
	}

	profile, err := repos.Users.Create(ctx, &model.CreateUserProfileRequest{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
		Role:  account.Role,
	})
	if err != nil {
		return "", fmt.Errorf("create profile %s: %w", account.Email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), devBcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash demo password: %w", err)
	}

	err = repos.Credentials.Create(ctx, data.Credential{
		PrincipalID:  profile.ID,
		Email:        profile.Email,
		PasswordHash: string(hash),
	})
	if err != nil && !errors.Is(err, data.ErrCredentialEmailExists) {
		return "", fmt.Errorf("create credential %s: %w", account.Email, err)
	}

	logger.InfoContext(ctx, "seeded account", "email", account.Email, "role", account.Role)
	return profile.ID, nil
}

func seedReferenceData(ctx context.Context, repos Repos, adminID string, logger *slog.Logger) error {
	existing, err := repos.Soil.ListByAdmin(ctx, adminID, 1, 0)
	if err != nil {
		return fmt.Errorf("check existing soil records: %w", err)
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "reference data already seeded")
		return nil
	}

	for i := range seedSoilRecords {
		if _, createErr := repos.Soil.Create(ctx, adminID, &seedSoilRecords[i]); createErr != nil {
			return fmt.Errorf("seed soil record %q: %w", seedSoilRecords[i].SoilType, createErr)
		}
	}
	for i := range seedDistributors {
		if _, createErr := repos.Distributors.Create(ctx, adminID, &seedDistributors[i]); createErr != nil {
			return fmt.Errorf("seed distributor %q: %w", seedDistributors[i].Name, createErr)
		}
	}

	logger.InfoContext(ctx, "seeded reference data",
		"soil_records", len(seedSoilRecords),
		"distributors", len(seedDistributors),
	)
	return nil
}
