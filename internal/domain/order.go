package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderShipped, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return st, nil
	}
	return "", fmt.Errorf("status[%s] is not valid", s)
}

// CanTransition reports whether an admin may move an order from s to next.
// Setting the current status again is always allowed.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Address struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
}

func (a Address) Validate(ve *ValidationError) {
	if a.FullName == "" {
		ve.Add("shipping.fullName", "is required")
	}
	if a.Phone == "" {
		ve.Add("shipping.phone", "is required")
	}
	if a.Email == "" {
		ve.Add("shipping.email", "is required")
	}
	if a.Line1 == "" {
		ve.Add("shipping.line1", "is required")
	}
	if a.City == "" {
		ve.Add("shipping.city", "is required")
	}
}

type OrderLine struct {
	PartID   uuid.UUID
	Quantity int
}

// NewOrder is what the storefront submits; prices are resolved server side.
type NewOrder struct {
	CustomerEmail string
	Lines         []OrderLine
	Shipping      Address
	Method        ShippingMethod
	Payment       PaymentMethod
}

func (o NewOrder) Validate() error {
	ve := &ValidationError{}
	if len(o.Lines) == 0 {
		ve.Add("items", "at least one item is required")
	}
	seen := make(map[uuid.UUID]struct{}, len(o.Lines))
	for i, line := range o.Lines {
		if line.PartID == uuid.Nil {
			ve.Add(fmt.Sprintf("items[%d].partId", i), "is required")
		}
		if line.Quantity < 1 {
			ve.Add(fmt.Sprintf("items[%d].quantity", i), "must be at least 1")
		}
		if _, dup := seen[line.PartID]; dup {
			ve.Add(fmt.Sprintf("items[%d].partId", i), "is duplicated")
		}
		seen[line.PartID] = struct{}{}
	}
	if _, err := ParseShippingMethod(string(o.Method)); err != nil {
		ve.Add("shipping.method", err.Error())
	}
	if _, err := ParsePaymentMethod(string(o.Payment)); err != nil {
		ve.Add("payment", err.Error())
	}
	o.Shipping.Validate(ve)
	return ve.Err()
}

type OrderItem struct {
	PartID     uuid.UUID
	PartNumber string
	Name       string
	UnitPrice  Money
	Quantity   int
}

func (i OrderItem) LineTotal() Money {
	return i.UnitPrice.Mul(i.Quantity)
}

type Order struct {
	ID             uuid.UUID
	Number         string
	CustomerEmail  string
	Status         OrderStatus
	Items          []OrderItem
	Totals         Totals
	Shipping       Address
	ShippingMethod ShippingMethod
	Payment        PaymentMethod
	TrackingNumber string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderUpdate struct {
	Status         *OrderStatus
	TrackingNumber *string
}

type OrderSummary struct {
	ID            uuid.UUID
	Number        string
	CustomerEmail string
	Status        OrderStatus
	Total         Money
	ItemCount     int
	CreatedAt     time.Time
}

type OrderPage struct {
	Orders []OrderSummary
	Total  int
}
