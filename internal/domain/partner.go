package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PartnerStatus string

const (
	PartnerPending  PartnerStatus = "pending"
	PartnerApproved PartnerStatus = "approved"
	PartnerRejected PartnerStatus = "rejected"
)

func ParsePartnerStatus(s string) (PartnerStatus, error) {
	switch st := PartnerStatus(s); st {
	case PartnerPending, PartnerApproved, PartnerRejected:
		return st, nil
	}
	return "", fmt.Errorf("status[%s] is not valid", s)
}

// Partner is a business applying for a wholesale account.
type Partner struct {
	ID           uuid.UUID
	CompanyName  string
	ContactName  string
	Email        string
	Phone        string
	BusinessType string
	Address      string
	Message      string
	Status       PartnerStatus
	ReviewNotes  string
	ReviewedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Partner) Validate() error {
	ve := &ValidationError{}
	if p.CompanyName == "" {
		ve.Add("companyName", "is required")
	}
	if p.ContactName == "" {
		ve.Add("contactName", "is required")
	}
	if p.Email == "" {
		ve.Add("email", "is required")
	}
	if p.Phone == "" {
		ve.Add("phone", "is required")
	}
	return ve.Err()
}

type PartnerReview struct {
	Status PartnerStatus
	Notes  string
}

func (r PartnerReview) Validate() error {
	if r.Status != PartnerApproved && r.Status != PartnerRejected {
		return NewValidationError("status", "must be approved or rejected")
	}
	return nil
}

type PartnerPage struct {
	Partners []Partner
	Total    int
}
