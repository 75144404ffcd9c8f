package core

import (
	"context"

	"github.com/soilfarming/soil-agent/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// UserRepository defines the interface for user profile data operations.
type UserRepository interface {
	Create(ctx context.Context, req *model.CreateUserProfileRequest) (*model.UserProfile, error)
	GetByID(ctx context.Context, id string) (*model.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*model.UserProfile, error)
	List(ctx context.Context, limit, offset int) ([]*model.UserProfile, error)
}

// SoilRepository defines the interface for soil record data operations.
// ListByAdmin scopes results to records owned by adminID; List returns
// every record regardless of caller. Update and Delete re-validate
// ownership: an id owned by someone else reads as not found.
type SoilRepository interface {
	Create(ctx context.Context, adminID string, req *model.CreateSoilRecordRequest) (*model.SoilRecord, error)
	GetByID(ctx context.Context, id string) (*model.SoilRecord, error)
	List(ctx context.Context, limit, offset int) ([]*model.SoilRecord, error)
	ListByAdmin(ctx context.Context, adminID string, limit, offset int) ([]*model.SoilRecord, error)
	Update(ctx context.Context, id, adminID string, req *model.UpdateSoilRecordRequest) (*model.SoilRecord, error)
	Delete(ctx context.Context, id, adminID string) (bool, error)
}

// DistributorRepository defines the interface for distributor record data
// operations. Scoping and ownership semantics match SoilRepository.
type DistributorRepository interface {
	Create(
		ctx context.Context,
		adminID string,
		req *model.CreateDistributorRecordRequest,
	) (*model.DistributorRecord, error)
	GetByID(ctx context.Context, id string) (*model.DistributorRecord, error)
	List(ctx context.Context, limit, offset int) ([]*model.DistributorRecord, error)
	ListByAdmin(ctx context.Context, adminID string, limit, offset int) ([]*model.DistributorRecord, error)
	Update(
		ctx context.Context,
		id, adminID string,
		req *model.UpdateDistributorRecordRequest,
	) (*model.DistributorRecord, error)
	Delete(ctx context.Context, id, adminID string) (bool, error)
}
