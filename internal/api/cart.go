package api

import (
	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/shopspring/decimal"
)

type CartItem struct {
	PartID     uuid.UUID       `json:"partId"`
	PartNumber string          `json:"partNumber"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Stock      int             `json:"stock"`
	Image      string          `json:"image,omitempty"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

type Cart struct {
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Currency   string          `json:"currency"`
	// Clamped is set on add responses when stock capped the quantity.
	Clamped bool `json:"clamped,omitempty"`
}

type AddToCartRequest struct {
	PartID uuid.UUID `json:"partId"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func FromCart(c domain.Cart) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItem{
			PartID:     item.PartID,
			PartNumber: item.PartNumber,
			Name:       item.Name,
			Price:      item.Price.Amount,
			Quantity:   item.Quantity,
			Stock:      item.Stock,
			Image:      item.Image,
			LineTotal:  item.LineTotal().Amount,
		})
	}

	total := c.TotalPrice()

	return Cart{
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: total.Amount,
		Currency:   domain.MUR.String(),
	}
}
