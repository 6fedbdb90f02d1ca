package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType is an accepted identity document.
type DocumentType string

const (
	DocumentPassport        DocumentType = "PASSPORT"
	DocumentNationalID      DocumentType = "NATIONAL_ID"
	DocumentResidencePermit DocumentType = "RESIDENCE_PERMIT"
	DocumentDriverLicense   DocumentType = "DRIVER_LICENSE"
)

// IsValid checks if the document type is accepted.
func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentPassport, DocumentNationalID, DocumentResidencePermit, DocumentDriverLicense:
		return true
	default:
		return false
	}
}

// KYCVerification is a submitted identity document and its review.
type KYCVerification struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"user_id"`
	DocumentType    DocumentType `json:"document_type"`
	DocumentNumber  string       `json:"document_number"`
	DocumentKey     string       `json:"-"`                          // Object key in blob storage.
	ContentType     string       `json:"content_type"`
	Checksum        string       `json:"checksum"`
	SizeBytes       int64        `json:"size_bytes"`
	Status          KYCStatus    `json:"status"`
	ReviewedBy      *uuid.UUID   `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time   `json:"reviewed_at,omitempty"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
