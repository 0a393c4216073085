package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

// CartRepository persists carts of signed-in owners.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	SaveCart(ctx context.Context, cart domain.Cart) error
	DeleteItem(ctx context.Context, ownerID string, partID uuid.UUID) (bool, error)
	ClearCart(ctx context.Context, ownerID string) error
}

// CartStore keeps guest carts for the lifetime of a browsing session.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
