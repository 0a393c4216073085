package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

type PartnerRepository interface {
	CreatePartner(ctx context.Context, partner domain.Partner) (domain.Partner, error)
	GetPartner(ctx context.Context, id uuid.UUID) (domain.Partner, error)
	ListPartners(ctx context.Context, status string, page, limit int) (domain.PartnerPage, error)
	ReviewPartner(ctx context.Context, id uuid.UUID, review domain.PartnerReview) (domain.Partner, error)
	DeletePartner(ctx context.Context, id uuid.UUID) (bool, error)
}
