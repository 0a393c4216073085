package domain

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	OwnerID string
	Items   []CartItem
}

type CartItem struct {
	PartID     uuid.UUID
	PartNumber string
	Name       string
	Price      Money
	Quantity   int
	// Stock is the purchasable ceiling captured when the part was added.
	Stock int
	Image string

	CreatedAt time.Time
}

func (i CartItem) LineTotal() Money {
	return i.Price.Mul(i.Quantity)
}

// AddResult reports what AddItem did. Clamped is set when the requested
// increment hit the stock ceiling.
type AddResult struct {
	Added   bool
	Clamped bool
}

// AddItem inserts a new line with quantity 1 or bumps an existing line by
// one, never past its stock.
func (c *Cart) AddItem(item CartItem) AddResult {
	if idx := c.indexOf(item.PartID); idx >= 0 {
		existing := &c.Items[idx]
		if existing.Quantity >= existing.Stock {
			existing.Quantity = existing.Stock
			return AddResult{Clamped: true}
		}
		existing.Quantity++
		return AddResult{Added: true}
	}

	if item.Stock <= 0 {
		return AddResult{Clamped: true}
	}

	item.Quantity = 1
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	c.Items = append(c.Items, item)

	return AddResult{Added: true}
}

// UpdateQuantity sets the quantity of a line, removing it when quantity <= 0
// and clamping to [1, stock] otherwise. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(partID uuid.UUID, quantity int) bool {
	idx := c.indexOf(partID)
	if idx < 0 {
		return false
	}

	if quantity <= 0 {
		c.removeAt(idx)
		return true
	}

	item := &c.Items[idx]
	clamped := min(max(quantity, 1), item.Stock)
	if clamped == item.Quantity {
		return false
	}
	item.Quantity = clamped

	return true
}

func (c *Cart) RemoveItem(partID uuid.UUID) bool {
	idx := c.indexOf(partID)
	if idx < 0 {
		return false
	}
	c.removeAt(idx)
	return true
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsInCart(partID uuid.UUID) bool {
	return c.indexOf(partID) >= 0
}

func (c *Cart) GetItem(partID uuid.UUID) (CartItem, bool) {
	idx := c.indexOf(partID)
	if idx < 0 {
		return CartItem{}, false
	}
	return c.Items[idx], true
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() Money {
	total := ZeroMoney()
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) indexOf(partID uuid.UUID) int {
	for i, item := range c.Items {
		if item.PartID == partID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(idx int) {
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}
