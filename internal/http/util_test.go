package httpx

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		defLimit   int
		maxLimit   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/api/soil", 50, 100, 50, 0},
		{"explicit values", "/api/soil?limit=10&offset=20", 50, 100, 10, 20},
		{"clamps to max", "/api/soil?limit=500", 50, 100, 100, 0},
		{"negative offset clamped", "/api/soil?offset=-5", 50, 100, 50, 0},
		{"zero limit clamped to one", "/api/soil?limit=0", 50, 100, 1, 0},
		{"garbage falls back to default", "/api/soil?limit=abc", 50, 100, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			limit, offset := ParseLimitOffset(r, tt.defLimit, tt.maxLimit)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"required field", errors.New("soilType is required and cannot be empty"), true},
		{"length cap", errors.New("characteristics cannot exceed 2000 characters"), true},
		{"empty update", errors.New("at least one field must be updated"), true},
		{"bad type", errors.New("type must be Private or Government"), true},
		{"bad type filter", errors.New("type must be Private, Government, or all"), true},
		{"bad email", errors.New("email must contain @"), true},
		{"bad role", errors.New("role must be admin or farmer"), true},
		{"infrastructure error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isValidationError(tt.err))
		})
	}
}
