package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCarts struct {
	carts map[string]domain.Cart
}

func (m *memoryCarts) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	cart := m.carts[ownerID]
	cart.OwnerID = ownerID
	return cart, nil
}

func (m *memoryCarts) SaveCart(_ context.Context, cart domain.Cart) error {
	m.carts[cart.OwnerID] = cart
	return nil
}

func (m *memoryCarts) DeleteItem(_ context.Context, ownerID string, partID uuid.UUID) (bool, error) {
	cart := m.carts[ownerID]
	removed := cart.RemoveItem(partID)
	m.carts[ownerID] = cart
	return removed, nil
}

func (m *memoryCarts) ClearCart(_ context.Context, ownerID string) error {
	delete(m.carts, ownerID)
	return nil
}

type memoryGuests struct {
	carts map[string]domain.Cart
}

func (m *memoryGuests) Load(_ context.Context, key string) (domain.Cart, error) {
	return m.carts[key], nil
}

func (m *memoryGuests) Save(_ context.Context, key string, cart domain.Cart) error {
	m.carts[key] = cart
	return nil
}

func (m *memoryGuests) Delete(_ context.Context, key string) error {
	delete(m.carts, key)
	return nil
}

func TestCartRouter(t *testing.T) {
	ctx := t.Context()
	guests := &memoryGuests{carts: map[string]domain.Cart{}}
	owners := &memoryCarts{carts: map[string]domain.Cart{}}
	router := service.NewCartRouter(guests, owners)

	var cart domain.Cart
	cart.AddItem(domain.CartItem{PartID: uuid.New(), Price: domain.MustMoney("9.99"), Stock: 2})

	ownerKey := service.OwnerCartKey("customer-42")
	require.NoError(t, router.Save(ctx, ownerKey, cart))
	require.NoError(t, router.Save(ctx, "guest-session", cart))

	assert.Contains(t, owners.carts, "customer-42")
	assert.Equal(t, "customer-42", owners.carts["customer-42"].OwnerID)
	assert.Contains(t, guests.carts, "guest-session")

	loaded, err := router.Load(ctx, ownerKey)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.TotalItems())

	require.NoError(t, router.Delete(ctx, ownerKey))
	assert.NotContains(t, owners.carts, "customer-42")
	assert.Contains(t, guests.carts, "guest-session")

	require.NoError(t, router.Delete(ctx, "guest-session"))
	assert.Empty(t, guests.carts)
}
