// Package mocks provides mock implementations for testing the soil agent services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockSoilRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), adminID, gomock.Any()).Return(record, nil)
package mocks

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// Create, GetByID, GetByEmail, List
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/soilfarming/soil-agent/internal/core UserRepository

// Generate mock for SoilRepository interface from internal/core package.
// This creates MockSoilRepository with methods for all SoilRepository interface methods:
// Create, GetByID, List, ListByAdmin, Update, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=soil_repository_mock.go github.com/soilfarming/soil-agent/internal/core SoilRepository

// Generate mock for DistributorRepository interface from internal/core package.
// This creates MockDistributorRepository with methods for all DistributorRepository interface methods:
// Create, GetByID, List, ListByAdmin, Update, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=distributor_repository_mock.go github.com/soilfarming/soil-agent/internal/core DistributorRepository
