package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/api"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
	"go.uber.org/zap"
)

// Notifier sends the transactional emails. *mail.Notifier implements it.
type Notifier interface {
	OrderConfirmation(ctx context.Context, order domain.Order) error
	PartnerReceived(ctx context.Context, partner domain.Partner) error
	PartnerReviewed(ctx context.Context, partner domain.Partner) error
	ContactMessage(ctx context.Context, msg domain.ContactMessage) error
}

// Storefront ties the cart engine to the part catalog, the order ledger and
// the mailer.
type Storefront struct {
	parts    port.PartRepository
	orders   port.OrderRepository
	partners port.PartnerRepository
	carts    port.CartStore
	notifier Notifier
	logger   *zap.Logger
}

func NewStorefront(
	parts port.PartRepository,
	orders port.OrderRepository,
	partners port.PartnerRepository,
	carts port.CartStore,
	notifier Notifier,
	logger *zap.Logger,
) *Storefront {
	return &Storefront{
		parts:    parts,
		orders:   orders,
		partners: partners,
		carts:    carts,
		notifier: notifier,
		logger:   logger.Named("storefront"),
	}
}

func (s *Storefront) Cart(ctx context.Context, sessionID string) (domain.Cart, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.Load: %w", err)
	}
	return cart, nil
}

// AddToCart snapshots the current price and stock of the part into the cart.
func (s *Storefront) AddToCart(ctx context.Context, sessionID string, partID uuid.UUID) (domain.Cart, domain.AddResult, error) {
	if partID == uuid.Nil {
		return domain.Cart{}, domain.AddResult{}, domain.NewValidationError("partId", "is required")
	}

	part, err := s.parts.GetPart(ctx, partID)
	if err != nil {
		return domain.Cart{}, domain.AddResult{}, fmt.Errorf("parts.GetPart: %w", err)
	}

	var result domain.AddResult
	cart, err := s.mutateCart(ctx, sessionID, func(cart *domain.Cart) {
		result = cart.AddItem(part.CartItem())
	})
	if err != nil {
		return domain.Cart{}, domain.AddResult{}, err
	}

	if result.Clamped {
		s.logger.Debug("add to cart clamped by stock",
			zap.String("partNumber", part.PartNumber),
			zap.Int("stock", part.Stock))
	}

	return cart, result, nil
}

func (s *Storefront) UpdateCartItem(ctx context.Context, sessionID string, partID uuid.UUID, quantity int) (domain.Cart, error) {
	return s.mutateCart(ctx, sessionID, func(cart *domain.Cart) {
		cart.UpdateQuantity(partID, quantity)
	})
}

func (s *Storefront) RemoveCartItem(ctx context.Context, sessionID string, partID uuid.UUID) (domain.Cart, error) {
	return s.mutateCart(ctx, sessionID, func(cart *domain.Cart) {
		cart.RemoveItem(partID)
	})
}

func (s *Storefront) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("carts.Delete: %w", err)
	}
	return nil
}

func (s *Storefront) mutateCart(ctx context.Context, sessionID string, fn func(cart *domain.Cart)) (domain.Cart, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.Load: %w", err)
	}

	fn(&cart)

	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("carts.Save: %w", err)
	}

	return cart, nil
}

// Checkout turns the session cart into an order. The cart is cleared only
// once the order is stored; a failed confirmation email does not fail the
// checkout.
func (s *Storefront) Checkout(ctx context.Context, sessionID string, req api.CheckoutRequest) (domain.Order, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("carts.Load: %w", err)
	}

	if cart.IsEmpty() {
		return domain.Order{}, domain.ErrEmptyCart
	}

	lines := make([]domain.OrderLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, domain.OrderLine{PartID: item.PartID, Quantity: item.Quantity})
	}

	newOrder, err := req.ToDomain(lines)
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.placeOrder(ctx, newOrder)
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("clear cart after checkout",
			zap.String("order", order.Number),
			zap.Error(err))
	}

	return order, nil
}

func (s *Storefront) PlaceOrder(ctx context.Context, req api.OrderRequest) (domain.Order, error) {
	newOrder, err := req.ToDomain()
	if err != nil {
		return domain.Order{}, err
	}

	return s.placeOrder(ctx, newOrder)
}

func (s *Storefront) placeOrder(ctx context.Context, newOrder domain.NewOrder) (domain.Order, error) {
	order, err := s.orders.CreateOrder(ctx, newOrder)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.CreateOrder: %w", err)
	}

	s.logger.Info("order placed",
		zap.String("order", order.Number),
		zap.Stringer("total", order.Totals.Total),
		zap.Int("items", len(order.Items)))

	if err := s.notifier.OrderConfirmation(ctx, order); err != nil {
		s.logger.Error("send order confirmation",
			zap.String("order", order.Number),
			zap.Error(err))
	}

	return order, nil
}

func (s *Storefront) SubmitPartner(ctx context.Context, partner domain.Partner) (domain.Partner, error) {
	created, err := s.partners.CreatePartner(ctx, partner)
	if err != nil {
		return domain.Partner{}, fmt.Errorf("partners.CreatePartner: %w", err)
	}

	if err := s.notifier.PartnerReceived(ctx, created); err != nil {
		s.logger.Error("send partner acknowledgement",
			zap.Stringer("partner", created.ID),
			zap.Error(err))
	}

	return created, nil
}

func (s *Storefront) ReviewPartner(ctx context.Context, id uuid.UUID, review domain.PartnerReview) (domain.Partner, error) {
	partner, err := s.partners.ReviewPartner(ctx, id, review)
	if err != nil {
		return domain.Partner{}, fmt.Errorf("partners.ReviewPartner: %w", err)
	}

	if err := s.notifier.PartnerReviewed(ctx, partner); err != nil {
		s.logger.Error("send partner review",
			zap.Stringer("partner", partner.ID),
			zap.Error(err))
	}

	return partner, nil
}

// Contact forwards a contact form message to the shop inbox. Unlike the
// other emails, delivery failure is returned to the caller.
func (s *Storefront) Contact(ctx context.Context, msg domain.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := s.notifier.ContactMessage(ctx, msg); err != nil {
		return fmt.Errorf("notifier.ContactMessage: %w", err)
	}

	return nil
}
