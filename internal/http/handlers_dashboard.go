package httpx

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/soilfarming/soil-agent/internal/domain/model"
	"github.com/soilfarming/soil-agent/internal/service"
)

// DashboardHandlers serves the combined landing view: soil reference data
// and distributor records in one response.
type DashboardHandlers struct {
	Soil         *service.SoilService
	Distributors *service.DistributorService
}

const dashboardSectionLimit = 20

// Overview handles GET /api/overview. Both collections load concurrently;
// either failure fails the whole response.
func (h *DashboardHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	var (
		soil         []*model.SoilRecord
		distributors []*model.DistributorRecord
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		records, err := h.Soil.List(ctx, service.SoilListOptions{Limit: dashboardSectionLimit})
		if err != nil {
			return err
		}
		soil = records
		return nil
	})
	g.Go(func() error {
		records, err := h.Distributors.List(ctx, service.DistributorListOptions{Limit: dashboardSectionLimit})
		if err != nil {
			return err
		}
		distributors = records
		return nil
	})

	if err := g.Wait(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "overview_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"soil":         soil,
		"distributors": distributors,
	})
}
