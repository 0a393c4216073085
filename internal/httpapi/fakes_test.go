package httpapi_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

// memoryStore backs the part, order, partner and user ports with maps.
type memoryStore struct {
	mu sync.Mutex

	parts    map[uuid.UUID]domain.Part
	orders   map[uuid.UUID]domain.Order
	partners map[uuid.UUID]domain.Partner
	users    map[uuid.UUID]domain.User

	lastFilters domain.SearchFilters
	failWith    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		parts:    map[uuid.UUID]domain.Part{},
		orders:   map[uuid.UUID]domain.Order{},
		partners: map[uuid.UUID]domain.Partner{},
		users:    map[uuid.UUID]domain.User{},
	}
}

func (m *memoryStore) ListParts(_ context.Context, filters domain.SearchFilters) (domain.PartPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return domain.PartPage{}, m.failWith
	}
	m.lastFilters = filters

	var page domain.PartPage
	for _, part := range m.parts {
		if filters.Category != "" && part.Category != filters.Category {
			continue
		}
		if filters.InStock && !part.InStock() {
			continue
		}
		page.Parts = append(page.Parts, part)
	}
	page.Total = len(page.Parts)

	return page, nil
}

func (m *memoryStore) GetPart(_ context.Context, id uuid.UUID) (domain.Part, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	part, ok := m.parts[id]
	if !ok {
		return domain.Part{}, domain.ErrNotFound
	}
	return part, nil
}

func (m *memoryStore) CreatePart(_ context.Context, part domain.Part) (domain.Part, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.parts {
		if existing.PartNumber == part.PartNumber {
			return domain.Part{}, fmt.Errorf("q.CreatePart: %w", domain.ErrConflict)
		}
	}
	part.ID = uuid.New()
	part.CreatedAt = time.Now().UTC()
	m.parts[part.ID] = part
	return part, nil
}

func (m *memoryStore) UpdatePart(_ context.Context, part domain.Part) (domain.Part, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if part.Stock < 0 {
		return domain.Part{}, domain.NewValidationError("stock", "must not be negative")
	}
	m.parts[part.ID] = part
	return part, nil
}

func (m *memoryStore) DeletePart(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, order := range m.orders {
		for _, item := range order.Items {
			if item.PartID == id {
				return false, fmt.Errorf("q.DeletePart: %w", domain.ErrConflict)
			}
		}
	}

	_, ok := m.parts[id]
	delete(m.parts, id)
	return ok, nil
}

func (m *memoryStore) CreateOrder(_ context.Context, newOrder domain.NewOrder) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	subtotal := domain.ZeroMoney()
	items := make([]domain.OrderItem, 0, len(newOrder.Lines))
	for _, line := range newOrder.Lines {
		part, ok := m.parts[line.PartID]
		if !ok {
			return domain.Order{}, fmt.Errorf("q.GetPartForUpdate: %w", domain.ErrNotFound)
		}
		if part.Stock < line.Quantity {
			return domain.Order{}, &domain.StockError{PartNumber: part.PartNumber, Available: part.Stock, Requested: line.Quantity}
		}
		item := domain.OrderItem{
			PartID:     part.ID,
			PartNumber: part.PartNumber,
			Name:       part.Name,
			UnitPrice:  part.Price,
			Quantity:   line.Quantity,
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.LineTotal())
	}

	for _, item := range items {
		part := m.parts[item.PartID]
		part.Stock -= item.Quantity
		m.parts[item.PartID] = part
	}

	order := domain.Order{
		ID:             uuid.New(),
		Number:         fmt.Sprintf("PD-%06d", len(m.orders)+1),
		CustomerEmail:  newOrder.CustomerEmail,
		Status:         domain.OrderPending,
		Items:          items,
		Totals:         domain.Quote(subtotal, newOrder.Method),
		Shipping:       newOrder.Shipping,
		ShippingMethod: newOrder.Method,
		Payment:        newOrder.Payment,
		CreatedAt:      time.Now().UTC(),
	}
	m.orders[order.ID] = order

	return order, nil
}

func (m *memoryStore) GetOrder(_ context.Context, id uuid.UUID) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	return order, nil
}

func (m *memoryStore) ListOrders(_ context.Context, status string, _, _ int) (domain.OrderPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var page domain.OrderPage
	for _, order := range m.orders {
		if status != "" && string(order.Status) != status {
			continue
		}
		page.Orders = append(page.Orders, domain.OrderSummary{
			ID:            order.ID,
			Number:        order.Number,
			CustomerEmail: order.CustomerEmail,
			Status:        order.Status,
			Total:         order.Totals.Total,
			ItemCount:     len(order.Items),
			CreatedAt:     order.CreatedAt,
		})
	}
	page.Total = len(page.Orders)
	return page, nil
}

func (m *memoryStore) UpdateOrder(_ context.Context, id uuid.UUID, update domain.OrderUpdate) (domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	if update.Status != nil {
		if !order.Status.CanTransition(*update.Status) {
			return domain.Order{}, fmt.Errorf("status %s -> %s: %w", order.Status, *update.Status, domain.ErrConflict)
		}
		order.Status = *update.Status
	}
	if update.TrackingNumber != nil {
		order.TrackingNumber = *update.TrackingNumber
	}
	m.orders[id] = order
	return order, nil
}

func (m *memoryStore) CreatePartner(_ context.Context, partner domain.Partner) (domain.Partner, error) {
	if err := partner.Validate(); err != nil {
		return domain.Partner{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.partners {
		if existing.Email == partner.Email && existing.Status != domain.PartnerRejected {
			return domain.Partner{}, fmt.Errorf("q.CreatePartner: %w", domain.ErrConflict)
		}
	}
	partner.ID = uuid.New()
	partner.Status = domain.PartnerPending
	m.partners[partner.ID] = partner
	return partner, nil
}

func (m *memoryStore) GetPartner(_ context.Context, id uuid.UUID) (domain.Partner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	partner, ok := m.partners[id]
	if !ok {
		return domain.Partner{}, domain.ErrNotFound
	}
	return partner, nil
}

func (m *memoryStore) ListPartners(_ context.Context, status string, _, _ int) (domain.PartnerPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var page domain.PartnerPage
	for _, partner := range m.partners {
		if status == "" || string(partner.Status) == status {
			page.Partners = append(page.Partners, partner)
		}
	}
	page.Total = len(page.Partners)
	return page, nil
}

func (m *memoryStore) ReviewPartner(_ context.Context, id uuid.UUID, review domain.PartnerReview) (domain.Partner, error) {
	if err := review.Validate(); err != nil {
		return domain.Partner{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	partner, ok := m.partners[id]
	if !ok {
		return domain.Partner{}, domain.ErrNotFound
	}
	now := time.Now().UTC()
	partner.Status = review.Status
	partner.ReviewNotes = review.Notes
	partner.ReviewedAt = &now
	m.partners[id] = partner
	return partner, nil
}

func (m *memoryStore) DeletePartner(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.partners[id]
	delete(m.partners, id)
	return ok, nil
}

func (m *memoryStore) ListUsers(_ context.Context, role string, _, _ int) (domain.UserPage, error) {
	if role != "" {
		if _, err := domain.ParseRole(role); err != nil {
			return domain.UserPage{}, domain.NewValidationError("role", err.Error())
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var page domain.UserPage
	for _, user := range m.users {
		if role == "" || string(user.Role) == role {
			page.Users = append(page.Users, user)
		}
	}
	page.Total = len(page.Users)
	return page, nil
}

func (m *memoryStore) GetUser(_ context.Context, id uuid.UUID) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (m *memoryStore) UpdateUser(_ context.Context, id uuid.UUID, update domain.UserUpdate) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.Active != nil {
		user.Active = *update.Active
	}
	m.users[id] = user
	return user, nil
}

// memoryCarts stands in for the database cart repository.
type memoryCarts struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

func (m *memoryCarts) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart := m.carts[ownerID]
	cart.OwnerID = ownerID
	return cart, nil
}

func (m *memoryCarts) SaveCart(_ context.Context, cart domain.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.carts[cart.OwnerID] = cart
	return nil
}

func (m *memoryCarts) DeleteItem(_ context.Context, ownerID string, partID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart := m.carts[ownerID]
	removed := cart.RemoveItem(partID)
	m.carts[ownerID] = cart
	return removed, nil
}

func (m *memoryCarts) ClearCart(_ context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, ownerID)
	return nil
}

var errDatabaseDown = errors.New("connection refused")
