package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/partsdepot/internal/db"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil,
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	dbCartItems, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	items, err := mapGetCartRowsToDomain(dbCartItems)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

// SaveCart replaces the stored lines of cart.OwnerID with cart.Items.
func (r *cartRepository) SaveCart(ctx context.Context, cart domain.Cart) error {
	if cart.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if err := q.ClearCart(ctx, cart.OwnerID); err != nil {
			return struct{}{}, fmt.Errorf("q.ClearCart: %w", err)
		}

		for _, item := range cart.Items {
			if err := q.AddItem(ctx, mapCartItemToAddParams(cart.OwnerID, item)); err != nil {
				return struct{}{}, fmt.Errorf("q.AddItem: %w", err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID string, partID uuid.UUID) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteItem(ctx, db.DeleteItemParams{
		OwnerID: ownerID,
		PartID:  partID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteItem: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) ClearCart(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	if err := r.q.ClearCart(ctx, ownerID); err != nil {
		return fmt.Errorf("q.ClearCart: %w", err)
	}

	return nil
}

func mapCartItemToAddParams(ownerID string, item domain.CartItem) db.AddItemParams {
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return db.AddItemParams{
		OwnerID:       ownerID,
		PartID:        item.PartID,
		PartNumber:    item.PartNumber,
		Name:          item.Name,
		PriceAmount:   item.Price.Amount,
		PriceCurrency: item.Price.Currency.String(),
		Quantity:      int32(item.Quantity),
		Stock:         int32(item.Stock),
		Image:         item.Image,
		CreatedAt:     createdAt,
	}
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.CartItem{
		PartID:     row.PartID,
		PartNumber: row.PartNumber,
		Name:       row.Name,
		Price:      domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Quantity:   int(row.Quantity),
		Stock:      int(row.Stock),
		Image:      row.Image,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
