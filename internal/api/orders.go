package api

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	PartID   uuid.UUID `json:"partId"`
	Quantity int       `json:"quantity"`
}

type ShippingRequest struct {
	domain.Address
	Method string `json:"method"`
}

type PaymentRequest struct {
	Method string `json:"method"`
}

// OrderRequest is the body of POST /api/orders. TaxRate is optional; when
// present it must equal the rate the server applies.
type OrderRequest struct {
	CustomerEmail string             `json:"customerEmail"`
	Items         []OrderItemRequest `json:"items"`
	Shipping      ShippingRequest    `json:"shipping"`
	Payment       PaymentRequest     `json:"payment"`
	TaxRate       *decimal.Decimal   `json:"taxRate,omitempty"`
}

// CheckoutRequest is an order whose lines come from the session cart.
type CheckoutRequest struct {
	CustomerEmail string           `json:"customerEmail"`
	Shipping      ShippingRequest  `json:"shipping"`
	Payment       PaymentRequest   `json:"payment"`
	TaxRate       *decimal.Decimal `json:"taxRate,omitempty"`
}

func (r OrderRequest) ToDomain() (domain.NewOrder, error) {
	lines := make([]domain.OrderLine, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, domain.OrderLine{PartID: item.PartID, Quantity: item.Quantity})
	}

	return newOrder(r.CustomerEmail, lines, r.Shipping, r.Payment, r.TaxRate)
}

func (r CheckoutRequest) ToDomain(lines []domain.OrderLine) (domain.NewOrder, error) {
	return newOrder(r.CustomerEmail, lines, r.Shipping, r.Payment, r.TaxRate)
}

func newOrder(email string, lines []domain.OrderLine, shipping ShippingRequest, payment PaymentRequest, taxRate *decimal.Decimal) (domain.NewOrder, error) {
	if taxRate != nil && !taxRate.Equal(domain.TaxRate) {
		return domain.NewOrder{}, domain.NewValidationError("taxRate",
			fmt.Sprintf("taxRate[%s] does not match %s", taxRate, domain.TaxRate))
	}

	if email == "" {
		email = shipping.Email
	}

	order := domain.NewOrder{
		CustomerEmail: email,
		Lines:         lines,
		Shipping:      shipping.Address,
		Method:        domain.ShippingMethod(shipping.Method),
		Payment:       domain.PaymentMethod(payment.Method),
	}

	if err := order.Validate(); err != nil {
		return domain.NewOrder{}, err
	}

	return order, nil
}

type OrderItem struct {
	PartID     uuid.UUID       `json:"partId"`
	PartNumber string          `json:"partNumber"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

type Order struct {
	ID             uuid.UUID       `json:"id"`
	Number         string          `json:"number"`
	CustomerEmail  string          `json:"customerEmail"`
	Status         string          `json:"status"`
	Items          []OrderItem     `json:"items"`
	Currency       string          `json:"currency"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	ShippingCost   decimal.Decimal `json:"shippingCost"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	Shipping       domain.Address  `json:"shipping"`
	ShippingMethod string          `json:"shippingMethod"`
	PaymentMethod  string          `json:"paymentMethod"`
	TrackingNumber string          `json:"trackingNumber,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type OrderEnvelope struct {
	Order Order `json:"order"`
}

type OrderSummary struct {
	ID            uuid.UUID       `json:"id"`
	Number        string          `json:"number"`
	CustomerEmail string          `json:"customerEmail"`
	Status        string          `json:"status"`
	Currency      string          `json:"currency"`
	Total         decimal.Decimal `json:"total"`
	ItemCount     int             `json:"itemCount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type OrderPage struct {
	Orders []OrderSummary `json:"orders"`
	Total  int            `json:"total"`
}

type OrderUpdateRequest struct {
	Status         *string `json:"status"`
	TrackingNumber *string `json:"trackingNumber"`
}

func (r OrderUpdateRequest) ToDomain() (domain.OrderUpdate, error) {
	var update domain.OrderUpdate

	if r.Status != nil {
		status, err := domain.ParseOrderStatus(*r.Status)
		if err != nil {
			return domain.OrderUpdate{}, domain.NewValidationError("status", err.Error())
		}
		update.Status = &status
	}
	update.TrackingNumber = r.TrackingNumber

	return update, nil
}

func FromOrder(o domain.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItem{
			PartID:     item.PartID,
			PartNumber: item.PartNumber,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice.Amount,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal().Amount,
		})
	}

	return Order{
		ID:             o.ID,
		Number:         o.Number,
		CustomerEmail:  o.CustomerEmail,
		Status:         string(o.Status),
		Items:          items,
		Currency:       o.Totals.Total.Currency.String(),
		Subtotal:       o.Totals.Subtotal.Amount,
		ShippingCost:   o.Totals.Shipping.Amount,
		Tax:            o.Totals.Tax.Amount,
		Total:          o.Totals.Total.Amount,
		Shipping:       o.Shipping,
		ShippingMethod: string(o.ShippingMethod),
		PaymentMethod:  string(o.Payment),
		TrackingNumber: o.TrackingNumber,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func (o Order) ToDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, domain.OrderItem{
			PartID:     item.PartID,
			PartNumber: item.PartNumber,
			Name:       item.Name,
			UnitPrice:  domain.NewMoney(item.UnitPrice),
			Quantity:   item.Quantity,
		})
	}

	return domain.Order{
		ID:            o.ID,
		Number:        o.Number,
		CustomerEmail: o.CustomerEmail,
		Status:        domain.OrderStatus(o.Status),
		Items:         items,
		Totals: domain.Totals{
			Subtotal: domain.NewMoney(o.Subtotal),
			Shipping: domain.NewMoney(o.ShippingCost),
			Tax:      domain.NewMoney(o.Tax),
			Total:    domain.NewMoney(o.Total),
		},
		Shipping:       o.Shipping,
		ShippingMethod: domain.ShippingMethod(o.ShippingMethod),
		Payment:        domain.PaymentMethod(o.PaymentMethod),
		TrackingNumber: o.TrackingNumber,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOrderPage(page domain.OrderPage) OrderPage {
	orders := make([]OrderSummary, 0, len(page.Orders))
	for _, o := range page.Orders {
		orders = append(orders, OrderSummary{
			ID:            o.ID,
			Number:        o.Number,
			CustomerEmail: o.CustomerEmail,
			Status:        string(o.Status),
			Currency:      o.Total.Currency.String(),
			Total:         o.Total.Amount,
			ItemCount:     o.ItemCount,
			CreatedAt:     o.CreatedAt,
		})
	}
	return OrderPage{Orders: orders, Total: page.Total}
}

func (p OrderPage) ToDomain() domain.OrderPage {
	orders := make([]domain.OrderSummary, 0, len(p.Orders))
	for _, o := range p.Orders {
		orders = append(orders, domain.OrderSummary{
			ID:            o.ID,
			Number:        o.Number,
			CustomerEmail: o.CustomerEmail,
			Status:        domain.OrderStatus(o.Status),
			Total:         domain.NewMoney(o.Total),
			ItemCount:     o.ItemCount,
			CreatedAt:     o.CreatedAt,
		})
	}
	return domain.OrderPage{Orders: orders, Total: p.Total}
}
