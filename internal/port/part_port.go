package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

type PartRepository interface {
	ListParts(ctx context.Context, filters domain.SearchFilters) (domain.PartPage, error)
	GetPart(ctx context.Context, id uuid.UUID) (domain.Part, error)
	CreatePart(ctx context.Context, part domain.Part) (domain.Part, error)
	UpdatePart(ctx context.Context, part domain.Part) (domain.Part, error)
	DeletePart(ctx context.Context, id uuid.UUID) (bool, error)
}

// PartsLister is the read side the catalog searcher needs, served either by
// the repository (in process) or by the REST client.
type PartsLister interface {
	ListParts(ctx context.Context, filters domain.SearchFilters) (domain.PartPage, error)
}
