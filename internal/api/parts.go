// Package api holds the JSON bodies exchanged by the HTTP server and the
// client, and their mapping to domain types.
package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/shopspring/decimal"
)

type Part struct {
	ID          uuid.UUID       `json:"id"`
	PartNumber  string          `json:"partNumber"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Make        string          `json:"make"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Condition   string          `json:"condition"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       int             `json:"stock"`
	InStock     bool            `json:"inStock"`
	Image       string          `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type PartPage struct {
	Parts []Part `json:"parts"`
	Total int    `json:"total"`
}

// PartInput is the body of part create and patch requests. On patch, nil
// fields keep their current value.
type PartInput struct {
	PartNumber  *string          `json:"partNumber"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Make        *string          `json:"make"`
	Category    *string          `json:"category"`
	Brand       *string          `json:"brand"`
	Condition   *string          `json:"condition"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Image       *string          `json:"image"`
}

func FromPart(p domain.Part) Part {
	return Part{
		ID:          p.ID,
		PartNumber:  p.PartNumber,
		Name:        p.Name,
		Description: p.Description,
		Make:        p.VehicleMake,
		Category:    p.Category,
		Brand:       p.Brand,
		Condition:   string(p.Condition),
		Price:       p.Price.Amount,
		Currency:    p.Price.Currency.String(),
		Stock:       p.Stock,
		InStock:     p.InStock(),
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p Part) ToDomain() domain.Part {
	return domain.Part{
		ID:          p.ID,
		PartNumber:  p.PartNumber,
		Name:        p.Name,
		Description: p.Description,
		VehicleMake: p.Make,
		Category:    p.Category,
		Brand:       p.Brand,
		Condition:   domain.Condition(p.Condition),
		Price:       domain.NewMoney(p.Price),
		Stock:       p.Stock,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromPartPage(page domain.PartPage) PartPage {
	parts := make([]Part, 0, len(page.Parts))
	for _, p := range page.Parts {
		parts = append(parts, FromPart(p))
	}
	return PartPage{Parts: parts, Total: page.Total}
}

func (p PartPage) ToDomain() domain.PartPage {
	parts := make([]domain.Part, 0, len(p.Parts))
	for _, part := range p.Parts {
		parts = append(parts, part.ToDomain())
	}
	return domain.PartPage{Parts: parts, Total: p.Total}
}

// Apply overlays the set fields of in onto part.
func (in PartInput) Apply(part domain.Part) domain.Part {
	setString(&part.PartNumber, in.PartNumber)
	setString(&part.Name, in.Name)
	setString(&part.Description, in.Description)
	setString(&part.VehicleMake, in.Make)
	setString(&part.Category, in.Category)
	setString(&part.Brand, in.Brand)
	setString(&part.Image, in.Image)
	if in.Condition != nil {
		part.Condition = domain.Condition(*in.Condition)
	}
	if in.Price != nil {
		part.Price = domain.NewMoney(*in.Price)
	}
	if in.Stock != nil {
		part.Stock = *in.Stock
	}
	return part
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
