package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/partsdepot/internal/db"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q: db.New(tx),
	}
}

// CreateOrder prices the order from current catalog rows and takes the stock
// in the same transaction. Parts are locked in id order to avoid deadlocks
// between concurrent checkouts sharing parts.
func (r *orderRepository) CreateOrder(ctx context.Context, order domain.NewOrder) (domain.Order, error) {
	if err := order.Validate(); err != nil {
		return domain.Order{}, err
	}

	lines := slices.Clone(order.Lines)
	slices.SortFunc(lines, func(a, b domain.OrderLine) int {
		return slices.Compare(a.PartID[:], b.PartID[:])
	})

	address, err := json.Marshal(order.Shipping)
	if err != nil {
		return domain.Order{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		items := make([]domain.OrderItem, 0, len(lines))
		subtotal := domain.ZeroMoney()

		for _, line := range lines {
			part, err := q.GetPartForUpdate(ctx, line.PartID)
			if err != nil {
				return domain.Order{}, mapError("q.GetPartForUpdate", err)
			}

			if int(part.Stock) < line.Quantity {
				return domain.Order{}, &domain.StockError{
					PartNumber: part.PartNumber,
					Available:  int(part.Stock),
					Requested:  line.Quantity,
				}
			}

			rowsAffected, err := q.DecrementStock(ctx, db.DecrementStockParams{
				Quantity: int32(line.Quantity),
				ID:       part.ID,
			})
			if err != nil {
				return domain.Order{}, fmt.Errorf("q.DecrementStock: %w", err)
			}
			if rowsAffected == 0 {
				return domain.Order{}, &domain.StockError{PartNumber: part.PartNumber, Requested: line.Quantity}
			}

			priceCurrency, err := currency.ParseISO(part.PriceCurrency)
			if err != nil {
				return domain.Order{}, fmt.Errorf("currency.ParseISO: %w", err)
			}
			if priceCurrency != domain.MUR {
				return domain.Order{}, domain.NewValidationError("items",
					fmt.Sprintf("part[%s] is priced in %s, orders are in %s", part.PartNumber, priceCurrency, domain.MUR))
			}

			item := domain.OrderItem{
				PartID:     part.ID,
				PartNumber: part.PartNumber,
				Name:       part.Name,
				UnitPrice:  domain.Money{Amount: part.PriceAmount, Currency: priceCurrency},
				Quantity:   line.Quantity,
			}
			items = append(items, item)
			subtotal = subtotal.Add(item.LineTotal())
		}

		totals := domain.Quote(subtotal, order.Method)

		row, err := q.CreateOrder(ctx, db.CreateOrderParams{
			CustomerEmail:   order.CustomerEmail,
			Status:          string(domain.OrderPending),
			Currency:        totals.Total.Currency.String(),
			Subtotal:        totals.Subtotal.Amount,
			ShippingCost:    totals.Shipping.Amount,
			Tax:             totals.Tax.Amount,
			Total:           totals.Total.Amount,
			ShippingMethod:  string(order.Method),
			PaymentMethod:   string(order.Payment),
			ShippingAddress: address,
		})
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.CreateOrder: %w", err)
		}

		for _, item := range items {
			if err := q.AddOrderItem(ctx, db.AddOrderItemParams{
				OrderID:    row.ID,
				PartID:     item.PartID,
				PartNumber: item.PartNumber,
				Name:       item.Name,
				UnitPrice:  item.UnitPrice.Amount,
				Quantity:   int32(item.Quantity),
			}); err != nil {
				return domain.Order{}, fmt.Errorf("q.AddOrderItem: %w", err)
			}
		}

		return mapOrderToDomain(row, itemsToRows(row.ID, items))
	})
}

func (r *orderRepository) GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	if id == uuid.Nil {
		return domain.Order{}, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, mapError("q.GetOrder", err)
	}

	items, err := r.q.GetOrderItems(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrderItems: %w", err)
	}

	return mapOrderToDomain(row, items)
}

func (r *orderRepository) ListOrders(ctx context.Context, status string, page, limit int) (domain.OrderPage, error) {
	if status != "" {
		if _, err := domain.ParseOrderStatus(status); err != nil {
			return domain.OrderPage{}, domain.NewValidationError("status", err.Error())
		}
	}

	rowLimit, rowOffset := pageBounds(page, limit)

	total, err := r.q.CountOrders(ctx, status)
	if err != nil {
		return domain.OrderPage{}, fmt.Errorf("q.CountOrders: %w", err)
	}

	rows, err := r.q.ListOrders(ctx, db.ListOrdersParams{
		Status:    status,
		RowLimit:  rowLimit,
		RowOffset: rowOffset,
	})
	if err != nil {
		return domain.OrderPage{}, fmt.Errorf("q.ListOrders: %w", err)
	}

	orders := make([]domain.OrderSummary, 0, len(rows))
	for _, row := range rows {
		parsedCurrency, err := currency.ParseISO(row.Currency)
		if err != nil {
			return domain.OrderPage{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
		}

		orders = append(orders, domain.OrderSummary{
			ID:            row.ID,
			Number:        row.Number,
			CustomerEmail: row.CustomerEmail,
			Status:        domain.OrderStatus(row.Status),
			Total:         domain.Money{Amount: row.Total, Currency: parsedCurrency},
			ItemCount:     int(row.ItemCount),
			CreatedAt:     row.CreatedAt,
		})
	}

	return domain.OrderPage{Orders: orders, Total: int(total)}, nil
}

// UpdateOrder applies a status change and/or a tracking number. Cancelling an
// order returns its quantities to stock.
func (r *orderRepository) UpdateOrder(ctx context.Context, id uuid.UUID, update domain.OrderUpdate) (domain.Order, error) {
	if id == uuid.Nil {
		return domain.Order{}, fmt.Errorf("id is empty")
	}
	if update.Status == nil && update.TrackingNumber == nil {
		return domain.Order{}, domain.NewValidationError("status", "status or trackingNumber is required")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		row, err := q.GetOrderForUpdate(ctx, id)
		if err != nil {
			return domain.Order{}, mapError("q.GetOrderForUpdate", err)
		}

		current := domain.OrderStatus(row.Status)
		next := current
		if update.Status != nil {
			next = *update.Status
		}

		if !current.CanTransition(next) {
			return domain.Order{}, fmt.Errorf("status %s -> %s: %w", current, next, domain.ErrConflict)
		}

		items, err := q.GetOrderItems(ctx, id)
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.GetOrderItems: %w", err)
		}

		if next == domain.OrderCancelled && current != domain.OrderCancelled {
			for _, item := range items {
				if err := q.IncrementStock(ctx, db.IncrementStockParams{
					Quantity: item.Quantity,
					ID:       item.PartID,
				}); err != nil {
					return domain.Order{}, fmt.Errorf("q.IncrementStock: %w", err)
				}
			}
		}

		tracking := row.TrackingNumber
		if update.TrackingNumber != nil {
			tracking = *update.TrackingNumber
		}

		if err := q.UpdateOrder(ctx, db.UpdateOrderParams{
			ID:             id,
			Status:         string(next),
			TrackingNumber: tracking,
		}); err != nil {
			return domain.Order{}, fmt.Errorf("q.UpdateOrder: %w", err)
		}

		row, err = q.GetOrder(ctx, id)
		if err != nil {
			return domain.Order{}, mapError("q.GetOrder", err)
		}

		return mapOrderToDomain(row, items)
	})
}

func itemsToRows(orderID uuid.UUID, items []domain.OrderItem) []db.OrderItem {
	rows := make([]db.OrderItem, 0, len(items))
	for _, item := range items {
		rows = append(rows, db.OrderItem{
			OrderID:    orderID,
			PartID:     item.PartID,
			PartNumber: item.PartNumber,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice.Amount,
			Quantity:   int32(item.Quantity),
		})
	}
	return rows
}

func mapOrderToDomain(row db.Order, itemRows []db.OrderItem) (domain.Order, error) {
	parsedCurrency, err := currency.ParseISO(row.Currency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
	}

	money := func(amount decimal.Decimal) domain.Money {
		return domain.Money{Amount: amount, Currency: parsedCurrency}
	}

	var address domain.Address
	if len(row.ShippingAddress) > 0 {
		if err := json.Unmarshal(row.ShippingAddress, &address); err != nil {
			return domain.Order{}, fmt.Errorf("json.Unmarshal: %w", err)
		}
	}

	items := make([]domain.OrderItem, 0, len(itemRows))
	for _, item := range itemRows {
		items = append(items, domain.OrderItem{
			PartID:     item.PartID,
			PartNumber: item.PartNumber,
			Name:       item.Name,
			UnitPrice:  money(item.UnitPrice),
			Quantity:   int(item.Quantity),
		})
	}

	return domain.Order{
		ID:            row.ID,
		Number:        row.Number,
		CustomerEmail: row.CustomerEmail,
		Status:        domain.OrderStatus(row.Status),
		Items:         items,
		Totals: domain.Totals{
			Subtotal: money(row.Subtotal),
			Shipping: money(row.ShippingCost),
			Tax:      money(row.Tax),
			Total:    money(row.Total),
		},
		Shipping:       address,
		ShippingMethod: domain.ShippingMethod(row.ShippingMethod),
		Payment:        domain.PaymentMethod(row.PaymentMethod),
		TrackingNumber: row.TrackingNumber,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}
