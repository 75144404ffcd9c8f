package service

import (
	"context"
	"errors"
	"strings"

	"github.com/soilfarming/soil-agent/internal/core"
	"github.com/soilfarming/soil-agent/internal/domain/model"
)

// DistributorListOptions carries pagination and the optional filters for
// distributor listings. Type accepts "all" or empty to match every type.
type DistributorListOptions struct {
	Query  string
	Type   string
	Limit  int
	Offset int
}

// DistributorServiceOptions groups dependencies for DistributorService.
type DistributorServiceOptions struct {
	Repo core.DistributorRepository
}

// DistributorService provides business logic for distributor records.
type DistributorService struct {
	repo core.DistributorRepository
}

// NewDistributorService constructs a new DistributorService.
func NewDistributorService(opts DistributorServiceOptions) (*DistributorService, error) {
	if opts.Repo == nil {
		return nil, errors.New("DistributorRepository is required")
	}
	return &DistributorService{repo: opts.Repo}, nil
}

// Create records a new distributor owned by adminID.
func (s *DistributorService) Create(
	ctx context.Context,
	adminID string,
	req *model.CreateDistributorRecordRequest,
) (*model.DistributorRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, adminID, req)
}

// GetByID retrieves a distributor record by ID.
func (s *DistributorService) GetByID(ctx context.Context, id string) (*model.DistributorRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns distributor records visible to any authenticated user,
// filtered in memory by the optional query and type.
func (s *DistributorService) List(ctx context.Context, opts DistributorListOptions) ([]*model.DistributorRecord, error) {
	typeFilter, err := parseTypeFilter(opts.Type)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.List(ctx, opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	return FilterDistributors(records, opts.Query, typeFilter), nil
}

// ListOwn returns the records owned by adminID, filtered by the optional
// query and type.
func (s *DistributorService) ListOwn(
	ctx context.Context,
	adminID string,
	opts DistributorListOptions,
) ([]*model.DistributorRecord, error) {
	typeFilter, err := parseTypeFilter(opts.Type)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListByAdmin(ctx, adminID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	return FilterDistributors(records, opts.Query, typeFilter), nil
}

// Update applies a partial update to a record owned by adminID.
func (s *DistributorService) Update(
	ctx context.Context,
	id, adminID string,
	req *model.UpdateDistributorRecordRequest,
) (*model.DistributorRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, adminID, req)
}

// Delete removes a record owned by adminID. Returns false when no owned
// record matches.
func (s *DistributorService) Delete(ctx context.Context, id, adminID string) (bool, error) {
	return s.repo.Delete(ctx, id, adminID)
}

// parseTypeFilter maps a type query parameter onto a concrete type filter.
// Empty and "all" mean no filtering; anything else must be a valid type.
func parseTypeFilter(value string) (model.DistributorType, error) {
	if value == "" || strings.EqualFold(value, model.DistributorTypeAll) {
		return "", nil
	}
	typ, ok := model.ParseDistributorType(value)
	if !ok {
		return "", errors.New("type must be Private, Government, or all")
	}
	return typ, nil
}
