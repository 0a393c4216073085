package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.NewOrder) (domain.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error)
	ListOrders(ctx context.Context, status string, page, limit int) (domain.OrderPage, error)
	UpdateOrder(ctx context.Context, id uuid.UUID, update domain.OrderUpdate) (domain.Order, error)
}
