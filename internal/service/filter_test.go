package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soilfarming/soil-agent/internal/domain/model"
)

func soilFixture() []*model.SoilRecord {
	return []*model.SoilRecord{
		{ID: "1", SoilType: "Alluvial", Characteristics: "Rich in humus", BestCrops: "Rice, Wheat", PHLevel: "6.5 - 7.5"},
		{ID: "2", SoilType: "Black", Characteristics: "Clayey, retains moisture", BestCrops: "Cotton", PHLevel: "7.2 - 8.5"},
		{ID: "3", SoilType: "Red", Characteristics: "Porous, low nitrogen", BestCrops: "Groundnut, Millet", PHLevel: "5.5 - 6.8"},
	}
}

func TestFilterSoil(t *testing.T) {
	records := soilFixture()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty query returns all", "", []string{"1", "2", "3"}},
		{"matches soil type case-insensitively", "black", []string{"2"}},
		{"matches characteristics", "humus", []string{"1"}},
		{"matches crops", "cotton", []string{"2"}},
		{"ph level text is not searched", "5.5", []string{}},
		{"whitespace-only query returns all", "   ", []string{"1", "2", "3"}},
		{"no match", "volcanic", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSoil(records, tt.query)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func distributorFixture() []*model.DistributorRecord {
	return []*model.DistributorRecord{
		{ID: "1", Name: "GreenGrow Supplies", Contact: "555-0101", Location: "Pune", Type: model.DistributorTypePrivate, Products: "Seeds, Fertilizer"},
		{ID: "2", Name: "State Agro Board", Contact: "555-0102", Location: "Nagpur", Type: model.DistributorTypeGovernment, Products: "Subsidized seeds"},
		{ID: "3", Name: "FarmLine Traders", Contact: "555-0103", Location: "Pune", Type: model.DistributorTypePrivate, Products: "Pesticides"},
	}
}

func TestFilterDistributors(t *testing.T) {
	records := distributorFixture()

	tests := []struct {
		name    string
		query   string
		typ     model.DistributorType
		wantIDs []string
	}{
		{"no filters returns all", "", "", []string{"1", "2", "3"}},
		{"type filter only", "", model.DistributorTypeGovernment, []string{"2"}},
		{"query only matches name", "farmline", "", []string{"3"}},
		{"query matches location", "pune", "", []string{"1", "3"}},
		{"query matches products", "seeds", "", []string{"1", "2"}},
		{"query and type combined", "pune", model.DistributorTypePrivate, []string{"1", "3"}},
		{"query excluded by type", "farmline", model.DistributorTypeGovernment, []string{}},
		{"type text is not searched", "private", "", []string{}},
		{"contact is not searched", "555-0102", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDistributors(records, tt.query, tt.typ)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
