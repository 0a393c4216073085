package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
	"github.com/nikolayk812/partsdepot/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type cartRepositorySuite struct {
	suite.Suite

	repo port.CartRepository
	pool *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before all tests in the suite
func (suite *cartRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewCart(suite.pool)
}

// after all tests in the suite
func (suite *cartRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *cartRepositorySuite) TestSaveCart() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		cart      domain.Cart
		wantError string
	}{
		{
			name: "save cart with items: ok",
			cart: cartOf(gofakeit.UUID(), randomCartItem(), randomCartItem()),
		},
		{
			name: "save empty cart: ok",
			cart: cartOf(gofakeit.UUID()),
		},
		{
			name:      "save cart with empty owner ID: error",
			cart:      cartOf("", randomCartItem()),
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.repo.SaveCart(ctx, tt.cart)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			cart, err := suite.repo.GetCart(ctx, tt.cart.OwnerID)
			require.NoError(t, err)

			assert.Equal(t, tt.cart.OwnerID, cart.OwnerID)
			assertCartItems(t, tt.cart.Items, cart.Items)
		})
	}
}

func (suite *cartRepositorySuite) TestSaveCart_ReplacesLines() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	first := randomCartItem()
	second := randomCartItem()

	require.NoError(t, suite.repo.SaveCart(ctx, cartOf(ownerID, first, second)))

	cart, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)

	cart.UpdateQuantity(first.PartID, first.Stock)
	cart.RemoveItem(second.PartID)
	require.NoError(t, suite.repo.SaveCart(ctx, cart))

	saved, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)

	require.Len(t, saved.Items, 1)
	assert.Equal(t, first.PartID, saved.Items[0].PartID)
	assert.Equal(t, first.Stock, saved.Items[0].Quantity)
}

func (suite *cartRepositorySuite) TestDeleteItem() {
	defer suite.deleteAll()

	existing := randomCartItem()

	tests := []struct {
		name        string
		ownerID     string
		partID      uuid.UUID
		setupItems  []domain.CartItem
		wantDeleted bool
		wantError   string
	}{
		{
			name:        "delete existing item: ok",
			ownerID:     gofakeit.UUID(),
			partID:      existing.PartID,
			setupItems:  []domain.CartItem{existing},
			wantDeleted: true,
		},
		{
			name:        "delete non-existing item: not found",
			ownerID:     gofakeit.UUID(),
			partID:      uuid.New(),
			setupItems:  []domain.CartItem{randomCartItem()},
			wantDeleted: false,
		},
		{
			name:        "delete from empty cart: not found",
			ownerID:     gofakeit.UUID(),
			partID:      uuid.New(),
			wantDeleted: false,
		},
		{
			name:      "delete with empty owner ID: error",
			ownerID:   "",
			partID:    uuid.New(),
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			if len(tt.setupItems) > 0 {
				require.NoError(t, suite.repo.SaveCart(ctx, cartOf(tt.ownerID, tt.setupItems...)))
			}

			deleted, err := suite.repo.DeleteItem(ctx, tt.ownerID, tt.partID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)
		})
	}
}

func (suite *cartRepositorySuite) TestGetCart() {
	defer suite.deleteAll()

	tests := []struct {
		name       string
		ownerID    string
		setupItems []domain.CartItem
		wantError  string
	}{
		{
			name:       "get cart with items: ok",
			ownerID:    gofakeit.UUID(),
			setupItems: []domain.CartItem{randomCartItem(), randomCartItem()},
		},
		{
			name:    "get empty cart: ok",
			ownerID: gofakeit.UUID(),
		},
		{
			name:      "get cart with empty owner ID: error",
			ownerID:   "",
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			if len(tt.setupItems) > 0 {
				require.NoError(t, suite.repo.SaveCart(ctx, cartOf(tt.ownerID, tt.setupItems...)))
			}

			cart, err := suite.repo.GetCart(ctx, tt.ownerID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.ownerID, cart.OwnerID)
			assertCartItems(t, tt.setupItems, cart.Items)
		})
	}
}

func (suite *cartRepositorySuite) TestClearCart() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	require.NoError(t, suite.repo.SaveCart(ctx, cartOf(ownerID, randomCartItem(), randomCartItem())))

	require.NoError(t, suite.repo.ClearCart(ctx, ownerID))

	cart, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func (suite *cartRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE cart_items CASCADE")
	suite.NoError(err)
}

func cartOf(ownerID string, items ...domain.CartItem) domain.Cart {
	cart := domain.Cart{OwnerID: ownerID}
	for _, item := range items {
		cart.AddItem(item)
	}
	return cart
}

func randomCartItem() domain.CartItem {
	return domain.CartItem{
		PartID:     uuid.New(),
		PartNumber: gofakeit.LetterN(3) + gofakeit.DigitN(3),
		Name:       gofakeit.ProductName(),
		Price:      randomMoney(),
		Stock:      gofakeit.IntRange(1, 20),
		Image:      gofakeit.URL(),
	}
}

func assertCartItems(t *testing.T, expected, actual []domain.CartItem) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartItem{}, "CreatedAt"),
		cmpopts.SortSlices(func(a, b domain.CartItem) bool {
			return a.PartID.String() < b.PartID.String()
		}),
		cmpopts.EquateEmpty(),
		moneyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	for _, item := range actual {
		assert.False(t, item.CreatedAt.IsZero())
	}
}
