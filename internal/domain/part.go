package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionUsed        Condition = "used"
	ConditionRefurbished Condition = "refurbished"
)

func ParseCondition(s string) (Condition, error) {
	switch c := Condition(s); c {
	case ConditionNew, ConditionUsed, ConditionRefurbished:
		return c, nil
	}
	return "", fmt.Errorf("condition[%s] is not valid", s)
}

type Part struct {
	ID          uuid.UUID
	PartNumber  string
	Name        string
	Description string
	VehicleMake string
	Category    string
	Brand       string
	Condition   Condition
	Price       Money
	Stock       int
	Image       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Part) InStock() bool {
	return p.Stock > 0
}

// CartItem snapshots the part for the cart; stock is captured once.
func (p Part) CartItem() CartItem {
	return CartItem{
		PartID:     p.ID,
		PartNumber: p.PartNumber,
		Name:       p.Name,
		Price:      p.Price,
		Stock:      p.Stock,
		Image:      p.Image,
	}
}

type SortKey string

const (
	SortByName        SortKey = "name"
	SortByPrice       SortKey = "price"
	SortByPriceDesc   SortKey = "-price"
	SortByVehicleMake SortKey = "vehicleMake"
	SortByCategory    SortKey = "category"

	DefaultSort = SortByName
)

func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return DefaultSort, nil
	}
	switch k := SortKey(s); k {
	case SortByName, SortByPrice, SortByPriceDesc, SortByVehicleMake, SortByCategory:
		return k, nil
	}
	return "", fmt.Errorf("sortBy[%s] is not valid", s)
}

// SearchFilters is the parsed, validated form of a catalog listing request.
// Empty strings and nil bounds mean "no filter".
type SearchFilters struct {
	Search    string
	Make      string
	Category  string
	Brand     string
	Condition string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	InStock   bool
	SortBy    SortKey
	Page      int
	Limit     int
}

func (f SearchFilters) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type PartPage struct {
	Parts []Part
	Total int
}
