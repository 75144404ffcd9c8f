// Package testutil provides testing utilities and helpers for the soil agent service.
package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/soilfarming/soil-agent/internal/domain/auth"
	"github.com/soilfarming/soil-agent/internal/domain/model"
)

// SoilRequestBuilder provides a fluent interface for building CreateSoilRecordRequest objects.
type SoilRequestBuilder struct {
	req *model.CreateSoilRecordRequest
}

// NewSoilRequest creates a new SoilRequestBuilder with sensible defaults.
func NewSoilRequest() *SoilRequestBuilder {
	return &SoilRequestBuilder{
		req: &model.CreateSoilRecordRequest{
			SoilType:        "Alluvial",
			Characteristics: "Rich in humus and potash, found in river plains",
			BestCrops:       "Rice, Wheat, Sugarcane",
			PHLevel:         "6.5 - 7.5",
		},
	}
}

// WithSoilType sets the soil type.
func (b *SoilRequestBuilder) WithSoilType(soilType string) *SoilRequestBuilder {
	b.req.SoilType = soilType
	return b
}

// WithCharacteristics sets the characteristics.
func (b *SoilRequestBuilder) WithCharacteristics(characteristics string) *SoilRequestBuilder {
	b.req.Characteristics = characteristics
	return b
}

// WithBestCrops sets the best crops.
func (b *SoilRequestBuilder) WithBestCrops(bestCrops string) *SoilRequestBuilder {
	b.req.BestCrops = bestCrops
	return b
}

// WithPHLevel sets the pH level.
func (b *SoilRequestBuilder) WithPHLevel(phLevel string) *SoilRequestBuilder {
	b.req.PHLevel = phLevel
	return b
}

// Build returns the constructed request.
func (b *SoilRequestBuilder) Build() *model.CreateSoilRecordRequest {
	req := *b.req
	return &req
}

// DistributorRequestBuilder provides a fluent interface for building
// CreateDistributorRecordRequest objects.
type DistributorRequestBuilder struct {
	req *model.CreateDistributorRecordRequest
}

// NewDistributorRequest creates a new DistributorRequestBuilder with sensible defaults.
func NewDistributorRequest() *DistributorRequestBuilder {
	return &DistributorRequestBuilder{
		req: &model.CreateDistributorRecordRequest{
			Name:     "GreenGrow Supplies",
			Contact:  "+91 98765 43210",
			Location: "Pune, Maharashtra",
			Type:     model.DistributorTypePrivate,
			Products: "Seeds, Fertilizers, Pesticides",
		},
	}
}

// WithName sets the distributor name.
func (b *DistributorRequestBuilder) WithName(name string) *DistributorRequestBuilder {
	b.req.Name = name
	return b
}

// WithContact sets the contact.
func (b *DistributorRequestBuilder) WithContact(contact string) *DistributorRequestBuilder {
	b.req.Contact = contact
	return b
}

// WithLocation sets the location.
func (b *DistributorRequestBuilder) WithLocation(location string) *DistributorRequestBuilder {
	b.req.Location = location
	return b
}

// WithType sets the distributor type.
func (b *DistributorRequestBuilder) WithType(typ model.DistributorType) *DistributorRequestBuilder {
	b.req.Type = typ
	return b
}

// WithProducts sets the products.
func (b *DistributorRequestBuilder) WithProducts(products string) *DistributorRequestBuilder {
	b.req.Products = products
	return b
}

// Build returns the constructed request.
func (b *DistributorRequestBuilder) Build() *model.CreateDistributorRecordRequest {
	req := *b.req
	return &req
}

// CreateTestUser inserts a user profile row directly and returns its id.
// Record tables reference users(id), so repo tests need a parent row.
func CreateTestUser(t TestingTB, db *sql.DB, role auth.Role) string {
	t.Helper()

	id := uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, role, created_at)
		VALUES ($1, $2, $3, $4, now())`,
		id, id+"@example.com", "Test "+string(role), role,
	)
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}
	return id
}

// CreateTestAdmin inserts an admin profile row and returns its id.
func CreateTestAdmin(t TestingTB, db *sql.DB) string {
	t.Helper()
	return CreateTestUser(t, db, auth.RoleAdmin)
}
