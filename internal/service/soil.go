package service

import (
	"context"
	"errors"

	"github.com/soilfarming/soil-agent/internal/core"
	"github.com/soilfarming/soil-agent/internal/domain/model"
)

// SoilListOptions carries pagination and the optional free-text filter for
// soil record listings.
type SoilListOptions struct {
	Query  string
	Limit  int
	Offset int
}

// SoilServiceOptions groups dependencies for SoilService.
type SoilServiceOptions struct {
	Repo core.SoilRepository
}

// SoilService provides business logic for soil reference records.
// Writes are scoped to the owning admin; reads are open to any
// authenticated principal.
type SoilService struct {
	repo core.SoilRepository
}

// NewSoilService constructs a new SoilService.
func NewSoilService(opts SoilServiceOptions) (*SoilService, error) {
	if opts.Repo == nil {
		return nil, errors.New("SoilRepository is required")
	}
	return &SoilService{repo: opts.Repo}, nil
}

// Create records a new soil entry owned by adminID.
func (s *SoilService) Create(ctx context.Context, adminID string, req *model.CreateSoilRecordRequest) (*model.SoilRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, adminID, req)
}

// GetByID retrieves a soil record by ID.
func (s *SoilService) GetByID(ctx context.Context, id string) (*model.SoilRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns soil records visible to any authenticated user, filtered
// in memory by the optional query.
func (s *SoilService) List(ctx context.Context, opts SoilListOptions) ([]*model.SoilRecord, error) {
	records, err := s.repo.List(ctx, opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	return FilterSoil(records, opts.Query), nil
}

// ListOwn returns the records owned by adminID, filtered by the optional
// query.
func (s *SoilService) ListOwn(ctx context.Context, adminID string, opts SoilListOptions) ([]*model.SoilRecord, error) {
	records, err := s.repo.ListByAdmin(ctx, adminID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	return FilterSoil(records, opts.Query), nil
}

// Update applies a partial update to a record owned by adminID.
// A record owned by someone else reads as not found.
func (s *SoilService) Update(ctx context.Context, id, adminID string, req *model.UpdateSoilRecordRequest) (*model.SoilRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, adminID, req)
}

// Delete removes a record owned by adminID. Returns false when no owned
// record matches.
func (s *SoilService) Delete(ctx context.Context, id, adminID string) (bool, error) {
	return s.repo.Delete(ctx, id, adminID)
}
