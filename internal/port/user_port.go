package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

type UserRepository interface {
	ListUsers(ctx context.Context, role string, page, limit int) (domain.UserPage, error)
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (domain.User, error)
}
