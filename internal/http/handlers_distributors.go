package httpx

import (
	"errors"
	"net/http"

	"github.com/soilfarming/soil-agent/internal/data"
	"github.com/soilfarming/soil-agent/internal/domain/model"
	"github.com/soilfarming/soil-agent/internal/service"
)

// DistributorHandlers provides HTTP handlers for distributor record operations.
type DistributorHandlers struct {
	Svc *service.DistributorService
}

const (
	defaultDistributorListLimit = 50
	maxDistributorListLimit     = 100
)

// Create handles HTTP requests to publish a new distributor record.
func (h *DistributorHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	var req model.CreateDistributorRecordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	record, err := h.Svc.Create(r.Context(), session.PrincipalID, &req)
	if err != nil {
		if isValidationError(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, record)
}

// List handles HTTP requests to browse distributor records with pagination,
// an optional free-text filter (?q=), and an optional type filter
// (?type=Private|Government|all).
func (h *DistributorHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultDistributorListLimit, maxDistributorListLimit)
	opts := service.DistributorListOptions{
		Query:  r.URL.Query().Get("q"),
		Type:   r.URL.Query().Get("type"),
		Limit:  limit,
		Offset: offset,
	}

	records, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		if isValidationError(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_filter", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"distributors": records,
		"limit":        limit,
		"offset":       offset,
	})
}

// ListOwn handles HTTP requests to list the distributor records the calling
// admin published.
func (h *DistributorHandlers) ListOwn(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	limit, offset := ParseLimitOffset(r, defaultDistributorListLimit, maxDistributorListLimit)
	opts := service.DistributorListOptions{
		Query:  r.URL.Query().Get("q"),
		Type:   r.URL.Query().Get("type"),
		Limit:  limit,
		Offset: offset,
	}

	records, err := h.Svc.ListOwn(r.Context(), session.PrincipalID, opts)
	if err != nil {
		if isValidationError(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_filter", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"distributors": records,
		"limit":        limit,
		"offset":       offset,
	})
}

// GetByID handles HTTP requests to get a distributor record by ID.
func (h *DistributorHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("distributor id is required")},
		)
		return
	}

	record, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrDistributorNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "distributor_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, record)
}

// Update handles HTTP requests to update a distributor record.
//
//nolint:dupl // mirrors the soil update handler to share validation flow
func (h *DistributorHandlers) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("distributor id is required")},
		)
		return
	}

	var req model.UpdateDistributorRecordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	record, err := h.Svc.Update(r.Context(), id, session.PrincipalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrDistributorNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "distributor_not_found", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, record)
}

// Delete handles HTTP requests to delete a distributor record.
func (h *DistributorHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("distributor id is required")},
		)
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id, session.PrincipalID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}

	if !deleted {
		WriteError(
			w,
			ErrorParams{Code: http.StatusNotFound, ErrCode: "distributor_not_found", Err: errors.New("distributor not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
