package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxRate is the VAT applied to the order subtotal.
var TaxRate = decimal.RequireFromString("0.15")

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingPickup   ShippingMethod = "pickup"
)

var shippingRates = map[ShippingMethod]Money{
	ShippingStandard: MustMoney("20.00"),
	ShippingExpress:  MustMoney("35.00"),
	ShippingPickup:   MustMoney("0.00"),
}

func ParseShippingMethod(s string) (ShippingMethod, error) {
	m := ShippingMethod(s)
	if _, ok := shippingRates[m]; !ok {
		return "", fmt.Errorf("shipping method[%s] is not valid", s)
	}
	return m, nil
}

func (m ShippingMethod) Cost() Money {
	return shippingRates[m]
}

type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "card"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case PaymentCard, PaymentBankTransfer, PaymentCashOnDelivery:
		return m, nil
	}
	return "", fmt.Errorf("payment method[%s] is not valid", s)
}

type Totals struct {
	Subtotal Money
	Shipping Money
	Tax      Money
	Total    Money
}

// Quote prices an order. Tax is rounded half-up to cents before it is added,
// so Total is always the exact sum of the three components.
func Quote(subtotal Money, shipping ShippingMethod) Totals {
	subtotal = subtotal.Round()
	shippingCost := shipping.Cost()
	tax := subtotal.MulRate(TaxRate).Round()

	return Totals{
		Subtotal: subtotal,
		Shipping: shippingCost,
		Tax:      tax,
		Total:    subtotal.Add(shippingCost).Add(tax),
	}
}
