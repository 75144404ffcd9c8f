//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxDistributorFieldLen = 2000

// DistributorType classifies a distributor's ownership.
type DistributorType string

const (
	DistributorTypePrivate    DistributorType = "Private"
	DistributorTypeGovernment DistributorType = "Government"

	// DistributorTypeAll is the reserved filter value matching every type.
	// It is never stored on a record.
	DistributorTypeAll = "all"
)

// Valid reports whether the distributor type is supported.
func (t DistributorType) Valid() bool {
	switch t {
	case DistributorTypePrivate, DistributorTypeGovernment:
		return true
	default:
		return false
	}
}

// ParseDistributorType normalizes a type string and reports whether it is supported.
func ParseDistributorType(value string) (DistributorType, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "private":
		return DistributorTypePrivate, true
	case "government":
		return DistributorTypeGovernment, true
	default:
		return "", false
	}
}

// DistributorRecord describes an agricultural supplier a farmer can
// contact directly. Products is free text, typically a comma-separated
// list.
type DistributorRecord struct {
	ID        string          `json:"id"                  db:"id"`
	Name      string          `json:"name"                db:"name"`
	Contact   string          `json:"contact"             db:"contact"`
	Location  string          `json:"location"            db:"location"`
	Type      DistributorType `json:"type"                db:"type"`
	Products  string          `json:"products"            db:"products"`
	AdminID   string          `json:"adminId"             db:"admin_id"`
	CreatedAt time.Time       `json:"createdAt"           db:"created_at"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty" db:"updated_at"`
}

// CreateDistributorRecordRequest represents parameters to create a DistributorRecord.
type CreateDistributorRecordRequest struct {
	Name     string          `json:"name"`
	Contact  string          `json:"contact"`
	Location string          `json:"location"`
	Type     DistributorType `json:"type"`
	Products string          `json:"products"`
}

// UpdateDistributorRecordRequest represents parameters to update a DistributorRecord.
type UpdateDistributorRecordRequest struct {
	Name     *string          `json:"name,omitempty"`
	Contact  *string          `json:"contact,omitempty"`
	Location *string          `json:"location,omitempty"`
	Type     *DistributorType `json:"type,omitempty"`
	Products *string          `json:"products,omitempty"`
}

func validateDistributorField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(name + " is required and cannot be empty")
	}
	if utf8.RuneCountInString(value) > maxDistributorFieldLen {
		return errors.New(name + " cannot exceed 2000 characters")
	}
	return nil
}

// Validate validates CreateDistributorRecordRequest.
func (r *CreateDistributorRecordRequest) Validate() error {
	if err := validateDistributorField("name", r.Name); err != nil {
		return err
	}
	if err := validateDistributorField("contact", r.Contact); err != nil {
		return err
	}
	if err := validateDistributorField("location", r.Location); err != nil {
		return err
	}
	if err := validateDistributorField("products", r.Products); err != nil {
		return err
	}
	normalized, ok := ParseDistributorType(string(r.Type))
	if !ok {
		return errors.New("type must be Private or Government")
	}
	r.Type = normalized
	return nil
}

// HasUpdates reports whether any field is set in UpdateDistributorRecordRequest.
func (r *UpdateDistributorRecordRequest) HasUpdates() bool {
	return r.Name != nil || r.Contact != nil || r.Location != nil || r.Type != nil || r.Products != nil
}

// Validate validates UpdateDistributorRecordRequest, ensuring at least one
// field is set and values are sane.
func (r *UpdateDistributorRecordRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		if err := validateDistributorField("name", *r.Name); err != nil {
			return err
		}
	}
	if r.Contact != nil {
		if err := validateDistributorField("contact", *r.Contact); err != nil {
			return err
		}
	}
	if r.Location != nil {
		if err := validateDistributorField("location", *r.Location); err != nil {
			return err
		}
	}
	if r.Products != nil {
		if err := validateDistributorField("products", *r.Products); err != nil {
			return err
		}
	}
	if r.Type != nil {
		normalized, ok := ParseDistributorType(string(*r.Type))
		if !ok {
			return errors.New("type must be Private or Government")
		}
		*r.Type = normalized
	}
	return nil
}
