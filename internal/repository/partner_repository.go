package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/partsdepot/internal/db"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
)

type partnerRepository struct {
	q *db.Queries
}

func NewPartner(pool *pgxpool.Pool) port.PartnerRepository {
	return &partnerRepository{
		q: db.New(pool),
	}
}

// CreatePartner stores a pending application. A second live application
// for the same email is reported as domain.ErrConflict.
func (r *partnerRepository) CreatePartner(ctx context.Context, partner domain.Partner) (domain.Partner, error) {
	if err := partner.Validate(); err != nil {
		return domain.Partner{}, err
	}

	row, err := r.q.CreatePartner(ctx, db.CreatePartnerParams{
		CompanyName:  partner.CompanyName,
		ContactName:  partner.ContactName,
		Email:        strings.TrimSpace(partner.Email),
		Phone:        partner.Phone,
		BusinessType: partner.BusinessType,
		Address:      partner.Address,
		Message:      partner.Message,
	})
	if err != nil {
		return domain.Partner{}, mapError("q.CreatePartner", err)
	}

	return mapPartnerToDomain(row), nil
}

func (r *partnerRepository) GetPartner(ctx context.Context, id uuid.UUID) (domain.Partner, error) {
	if id == uuid.Nil {
		return domain.Partner{}, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetPartner(ctx, id)
	if err != nil {
		return domain.Partner{}, mapError("q.GetPartner", err)
	}

	return mapPartnerToDomain(row), nil
}

func (r *partnerRepository) ListPartners(ctx context.Context, status string, page, limit int) (domain.PartnerPage, error) {
	if status != "" {
		if _, err := domain.ParsePartnerStatus(status); err != nil {
			return domain.PartnerPage{}, domain.NewValidationError("status", err.Error())
		}
	}

	rowLimit, rowOffset := pageBounds(page, limit)

	total, err := r.q.CountPartners(ctx, status)
	if err != nil {
		return domain.PartnerPage{}, fmt.Errorf("q.CountPartners: %w", err)
	}

	rows, err := r.q.ListPartners(ctx, db.ListPartnersParams{
		Status:    status,
		RowLimit:  rowLimit,
		RowOffset: rowOffset,
	})
	if err != nil {
		return domain.PartnerPage{}, fmt.Errorf("q.ListPartners: %w", err)
	}

	partners := make([]domain.Partner, 0, len(rows))
	for _, row := range rows {
		partners = append(partners, mapPartnerToDomain(row))
	}

	return domain.PartnerPage{Partners: partners, Total: int(total)}, nil
}

func (r *partnerRepository) ReviewPartner(ctx context.Context, id uuid.UUID, review domain.PartnerReview) (domain.Partner, error) {
	if id == uuid.Nil {
		return domain.Partner{}, fmt.Errorf("id is empty")
	}
	if err := review.Validate(); err != nil {
		return domain.Partner{}, err
	}

	row, err := r.q.ReviewPartner(ctx, db.ReviewPartnerParams{
		ID:          id,
		Status:      string(review.Status),
		ReviewNotes: review.Notes,
	})
	if err != nil {
		return domain.Partner{}, mapError("q.ReviewPartner", err)
	}

	return mapPartnerToDomain(row), nil
}

func (r *partnerRepository) DeletePartner(ctx context.Context, id uuid.UUID) (bool, error) {
	rowsAffected, err := r.q.DeletePartner(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.DeletePartner: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapPartnerToDomain(row db.Partner) domain.Partner {
	partner := domain.Partner{
		ID:           row.ID,
		CompanyName:  row.CompanyName,
		ContactName:  row.ContactName,
		Email:        row.Email,
		Phone:        row.Phone,
		BusinessType: row.BusinessType,
		Address:      row.Address,
		Message:      row.Message,
		Status:       domain.PartnerStatus(row.Status),
		ReviewNotes:  row.ReviewNotes,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	if row.ReviewedAt.Valid {
		reviewedAt := row.ReviewedAt.Time
		partner.ReviewedAt = &reviewedAt
	}

	return partner
}
