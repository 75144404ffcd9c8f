//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxSoilFieldLen = 2000

// SoilRecord is a reference entry describing a soil type, its
// characteristics, and the crops it suits. PHLevel stays free text; the
// authors enter ranges like "5.5 - 6.5".
type SoilRecord struct {
	ID              string     `json:"id"                   db:"id"`
	SoilType        string     `json:"soilType"             db:"soil_type"`
	Characteristics string     `json:"characteristics"      db:"characteristics"`
	BestCrops       string     `json:"bestCrops"            db:"best_crops"`
	PHLevel         string     `json:"phLevel"              db:"ph_level"`
	AdminID         string     `json:"adminId"              db:"admin_id"`
	CreatedAt       time.Time  `json:"createdAt"            db:"created_at"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"  db:"updated_at"`
}

// CreateSoilRecordRequest represents parameters to create a SoilRecord.
type CreateSoilRecordRequest struct {
	SoilType        string `json:"soilType"`
	Characteristics string `json:"characteristics"`
	BestCrops       string `json:"bestCrops"`
	PHLevel         string `json:"phLevel"`
}

// UpdateSoilRecordRequest represents parameters to update a SoilRecord.
type UpdateSoilRecordRequest struct {
	SoilType        *string `json:"soilType,omitempty"`
	Characteristics *string `json:"characteristics,omitempty"`
	BestCrops       *string `json:"bestCrops,omitempty"`
	PHLevel         *string `json:"phLevel,omitempty"`
}

func validateSoilField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(name + " is required and cannot be empty")
	}
	if utf8.RuneCountInString(value) > maxSoilFieldLen {
		return errors.New(name + " cannot exceed 2000 characters")
	}
	return nil
}

// Validate validates CreateSoilRecordRequest. All four descriptive
// fields are required free text.
func (r *CreateSoilRecordRequest) Validate() error {
	if err := validateSoilField("soilType", r.SoilType); err != nil {
		return err
	}
	if err := validateSoilField("characteristics", r.Characteristics); err != nil {
		return err
	}
	if err := validateSoilField("bestCrops", r.BestCrops); err != nil {
		return err
	}
	return validateSoilField("phLevel", r.PHLevel)
}

// HasUpdates reports whether any field is set in UpdateSoilRecordRequest.
func (r *UpdateSoilRecordRequest) HasUpdates() bool {
	return r.SoilType != nil || r.Characteristics != nil || r.BestCrops != nil || r.PHLevel != nil
}

// Validate validates UpdateSoilRecordRequest, ensuring at least one field
// is set and no set field is blank.
func (r *UpdateSoilRecordRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.SoilType != nil {
		if err := validateSoilField("soilType", *r.SoilType); err != nil {
			return err
		}
	}
	if r.Characteristics != nil {
		if err := validateSoilField("characteristics", *r.Characteristics); err != nil {
			return err
		}
	}
	if r.BestCrops != nil {
		if err := validateSoilField("bestCrops", *r.BestCrops); err != nil {
			return err
		}
	}
	if r.PHLevel != nil {
		if err := validateSoilField("phLevel", *r.PHLevel); err != nil {
			return err
		}
	}
	return nil
}
