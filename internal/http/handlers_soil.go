// Package httpx provides HTTP handlers and utilities for the soil agent API.
package httpx

import (
	"errors"
	"net/http"

	"github.com/soilfarming/soil-agent/internal/data"
	"github.com/soilfarming/soil-agent/internal/domain/model"
	"github.com/soilfarming/soil-agent/internal/service"
)

// SoilHandlers provides HTTP handlers for soil record operations.
// Create, Update, Delete, and ListOwn run behind the admin gate; List and
// GetByID serve any authenticated session.
type SoilHandlers struct {
	Svc *service.SoilService
}

const (
	defaultSoilListLimit = 50
	maxSoilListLimit     = 100 // Maximum number of soil records that can be requested in one call
)

// Create handles HTTP requests to publish a new soil record.
func (h *SoilHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	var req model.CreateSoilRecordRequest
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

// List handles HTTP requests to browse soil records with pagination and an
// optional free-text filter (?q=).
func (h *SoilHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultSoilListLimit, maxSoilListLimit)
	opts := service.SoilListOptions{
		Query:  r.URL.Query().Get("q"),
		Limit:  limit,
		Offset: offset,
	}

	records, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"soil":   records,
		"limit":  limit,
		"offset": offset,
	})
}

// ListOwn handles HTTP requests to list the soil records the calling admin
// published.
func (h *SoilHandlers) ListOwn(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	limit, offset := ParseLimitOffset(r, defaultSoilListLimit, maxSoilListLimit)
	opts := service.SoilListOptions{
		Query:  r.URL.Query().Get("q"),
		Limit:  limit,
		Offset: offset,
	}

	records, err := h.Svc.ListOwn(r.Context(), session.PrincipalID, opts)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"soil":   records,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles HTTP requests to get a soil record by ID.
func (h *SoilHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("soil record id is required")},
		)
		return
	}

	record, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrSoilRecordNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "soil_record_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, record)
}

// Update handles HTTP requests to update a soil record. Ownership is
// enforced in the data layer: touching another admin's record reads as
// not found.
func (h *SoilHandlers) Update(w http.ResponseWriter, r *http.Request) {
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
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("soil record id is required")},
		)
		return
	}

	var req model.UpdateSoilRecordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	record, err := h.Svc.Update(r.Context(), id, session.PrincipalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrSoilRecordNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "soil_record_not_found", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, record)
}

// Delete handles HTTP requests to delete a soil record.
func (h *SoilHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("soil record id is required")},
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
			ErrorParams{Code: http.StatusNotFound, ErrCode: "soil_record_not_found", Err: errors.New("soil record not found")},
		)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
