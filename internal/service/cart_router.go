package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
)

const ownerPrefix = "user:"

// OwnerCartKey is the cart key of a signed-in customer. Carts under such keys
// are kept in the database instead of the session store.
func OwnerCartKey(userID string) string {
	return ownerPrefix + userID
}

type cartRouter struct {
	guests port.CartStore
	owners port.CartRepository
}

// NewCartRouter serves owner keys from owners and every other key from
// guests.
func NewCartRouter(guests port.CartStore, owners port.CartRepository) port.CartStore {
	return &cartRouter{guests: guests, owners: owners}
}

func (r *cartRouter) Load(ctx context.Context, key string) (domain.Cart, error) {
	ownerID, ok := strings.CutPrefix(key, ownerPrefix)
	if !ok {
		return r.guests.Load(ctx, key)
	}

	cart, err := r.owners.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("owners.GetCart: %w", err)
	}
	return cart, nil
}

func (r *cartRouter) Save(ctx context.Context, key string, cart domain.Cart) error {
	ownerID, ok := strings.CutPrefix(key, ownerPrefix)
	if !ok {
		return r.guests.Save(ctx, key, cart)
	}

	cart.OwnerID = ownerID
	if err := r.owners.SaveCart(ctx, cart); err != nil {
		return fmt.Errorf("owners.SaveCart: %w", err)
	}
	return nil
}

func (r *cartRouter) Delete(ctx context.Context, key string) error {
	ownerID, ok := strings.CutPrefix(key, ownerPrefix)
	if !ok {
		return r.guests.Delete(ctx, key)
	}

	if err := r.owners.ClearCart(ctx, ownerID); err != nil {
		return fmt.Errorf("owners.ClearCart: %w", err)
	}
	return nil
}
