package service

import (
	"strings"

	"github.com/soilfarming/soil-agent/internal/domain/model"
)

// In-memory filtering over fetched pages. The reference collections stay
// small, so substring matching after the fetch beats pushing ILIKE clauses
// into every list query.

// FilterSoil returns the records whose soil type, characteristics, or best
// crops contain query, case-insensitively. An empty query returns the input
// unchanged. The pH level is display data, not part of the search surface.
func FilterSoil(records []*model.SoilRecord, query string) []*model.SoilRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	out := make([]*model.SoilRecord, 0, len(records))
	for _, r := range records {
		if containsFold(q, r.SoilType, r.Characteristics, r.BestCrops) {
			out = append(out, r)
		}
	}
	return out
}

// FilterDistributors returns the records matching the query and type filter.
// An empty typeFilter matches every type; an empty query matches every
// record of that type. The text search covers name, location, and products
// only; the type is filtered structurally, never as text, so a query of
// "private" cannot sweep in every private distributor.
func FilterDistributors(
	records []*model.DistributorRecord,
	query string,
	typeFilter model.DistributorType,
) []*model.DistributorRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" && typeFilter == "" {
		return records
	}
	out := make([]*model.DistributorRecord, 0, len(records))
	for _, r := range records {
		if typeFilter != "" && r.Type != typeFilter {
			continue
		}
		if q != "" && !containsFold(q, r.Name, r.Location, r.Products) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// containsFold reports whether any field contains the already-lowercased
// query.
func containsFold(loweredQuery string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), loweredQuery) {
			return true
		}
	}
	return false
}
