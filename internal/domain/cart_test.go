package domain_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem(t *testing.T) {
	brakePads := cartItem("BRK001", "89.99", 25)
	lastOne := cartItem("FLT010", "12.50", 1)
	soldOut := cartItem("OIL777", "30.00", 0)

	tests := []struct {
		name         string
		adds         []domain.CartItem
		wantQuantity int
		wantResult   domain.AddResult
		wantInCart   bool
	}{
		{
			name:         "add new item: ok",
			adds:         []domain.CartItem{brakePads},
			wantQuantity: 1,
			wantResult:   domain.AddResult{Added: true},
			wantInCart:   true,
		},
		{
			name:         "add same item twice: quantity incremented",
			adds:         []domain.CartItem{brakePads, brakePads},
			wantQuantity: 2,
			wantResult:   domain.AddResult{Added: true},
			wantInCart:   true,
		},
		{
			name:         "add beyond stock: clamped",
			adds:         []domain.CartItem{lastOne, lastOne, lastOne},
			wantQuantity: 1,
			wantResult:   domain.AddResult{Clamped: true},
			wantInCart:   true,
		},
		{
			name:       "add sold out item: not inserted",
			adds:       []domain.CartItem{soldOut},
			wantResult: domain.AddResult{Clamped: true},
			wantInCart: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cart domain.Cart

			var result domain.AddResult
			for _, item := range tt.adds {
				result = cart.AddItem(item)
			}

			assert.Equal(t, tt.wantResult, result)

			partID := tt.adds[0].PartID
			require.Equal(t, tt.wantInCart, cart.IsInCart(partID))
			if !tt.wantInCart {
				assert.Equal(t, 0, cart.TotalItems())
				return
			}

			item, ok := cart.GetItem(partID)
			require.True(t, ok)
			assert.Equal(t, tt.wantQuantity, item.Quantity)
		})
	}
}

func TestCart_AddItemTwice_TotalPrice(t *testing.T) {
	var cart domain.Cart
	item := cartItem("BRK001", "89.99", 25)

	cart.AddItem(item)
	cart.AddItem(item)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 2, cart.TotalItems())
	assert.True(t, cart.TotalPrice().Equal(domain.MustMoney("179.98")), cart.TotalPrice().String())
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		unknownID    bool
		wantChanged  bool
		wantQuantity int
		wantRemoved  bool
	}{
		{
			name:         "set within stock: ok",
			quantity:     4,
			wantChanged:  true,
			wantQuantity: 4,
		},
		{
			name:         "set above stock: clamped to stock",
			quantity:     99,
			wantChanged:  true,
			wantQuantity: 5,
		},
		{
			name:        "set zero: removed",
			quantity:    0,
			wantChanged: true,
			wantRemoved: true,
		},
		{
			name:        "set negative: removed",
			quantity:    -3,
			wantChanged: true,
			wantRemoved: true,
		},
		{
			name:         "unknown id: no-op",
			quantity:     3,
			unknownID:    true,
			wantChanged:  false,
			wantQuantity: 1,
		},
		{
			name:         "same quantity: unchanged",
			quantity:     1,
			wantChanged:  false,
			wantQuantity: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cart domain.Cart
			item := cartItem("SPK204", "7.25", 5)
			cart.AddItem(item)

			target := item.PartID
			if tt.unknownID {
				target = uuid.New()
			}

			changed := cart.UpdateQuantity(target, tt.quantity)
			assert.Equal(t, tt.wantChanged, changed)

			got, ok := cart.GetItem(item.PartID)
			if tt.wantRemoved {
				assert.False(t, ok)
				assert.True(t, cart.IsEmpty())
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantQuantity, got.Quantity)
		})
	}
}

func TestCart_RemoveItem_Unknown(t *testing.T) {
	var cart domain.Cart
	cart.AddItem(cartItem("BRK001", "89.99", 25))
	cart.AddItem(cartItem("FLT010", "12.50", 3))

	itemsBefore := cart.TotalItems()
	priceBefore := cart.TotalPrice()

	removed := cart.RemoveItem(uuid.New())

	assert.False(t, removed)
	assert.Equal(t, itemsBefore, cart.TotalItems())
	assert.True(t, priceBefore.Equal(cart.TotalPrice()))
}

func TestCart_Clear(t *testing.T) {
	var cart domain.Cart
	cart.AddItem(cartItem("BRK001", "89.99", 25))
	cart.AddItem(cartItem("FLT010", "12.50", 3))

	cart.Clear()

	assert.Equal(t, 0, cart.TotalItems())
	assert.Empty(t, cart.Items)
	assert.True(t, cart.TotalPrice().Equal(domain.ZeroMoney()))
}

// Random interleavings of mutations must keep quantities within [1, stock]
// and the total equal to the sum of line totals.
func TestCart_RandomMutations_KeepInvariants(t *testing.T) {
	faker := gofakeit.New(42)

	catalog := make([]domain.CartItem, 6)
	for i := range catalog {
		catalog[i] = cartItem(faker.LetterN(3)+faker.DigitN(3), decimal.NewFromFloat(faker.Price(1, 500)).StringFixed(2), faker.IntRange(0, 4))
	}

	var cart domain.Cart
	for step := 0; step < 2000; step++ {
		item := catalog[faker.IntN(len(catalog))]

		switch faker.IntN(4) {
		case 0, 1:
			cart.AddItem(item)
		case 2:
			cart.UpdateQuantity(item.PartID, faker.IntRange(-2, 8))
		case 3:
			cart.RemoveItem(item.PartID)
		}

		wantTotal := domain.ZeroMoney()
		wantItems := 0
		for _, line := range cart.Items {
			require.GreaterOrEqual(t, line.Quantity, 1, "step %d", step)
			require.LessOrEqual(t, line.Quantity, line.Stock, "step %d", step)
			wantTotal = wantTotal.Add(line.Price.Mul(line.Quantity))
			wantItems += line.Quantity
		}
		require.True(t, wantTotal.Equal(cart.TotalPrice()), "step %d", step)
		require.Equal(t, wantItems, cart.TotalItems(), "step %d", step)
	}
}

func cartItem(partNumber, price string, stock int) domain.CartItem {
	return domain.CartItem{
		PartID:     uuid.New(),
		PartNumber: partNumber,
		Name:       gofakeit.ProductName(),
		Price:      domain.MustMoney(price),
		Stock:      stock,
	}
}
