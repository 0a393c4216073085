package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/partsdepot/internal/db"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type partRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewPart(pool *pgxpool.Pool) port.PartRepository {
	return &partRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func (r *partRepository) ListParts(ctx context.Context, filters domain.SearchFilters) (domain.PartPage, error) {
	if filters.Limit < 1 {
		return domain.PartPage{}, fmt.Errorf("limit must be positive")
	}

	limit, offset := pageBounds(filters.Page, filters.Limit)
	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = domain.DefaultSort
	}

	// count and page read from one snapshot so Total matches Parts
	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.PartPage, error) {
		total, err := q.CountParts(ctx, db.CountPartsParams{
			Search:      filters.Search,
			VehicleMake: filters.Make,
			Category:    filters.Category,
			Brand:       filters.Brand,
			Condition:   filters.Condition,
			MinPrice:    nullDecimal(filters.MinPrice),
			MaxPrice:    nullDecimal(filters.MaxPrice),
			InStock:     filters.InStock,
		})
		if err != nil {
			return domain.PartPage{}, fmt.Errorf("q.CountParts: %w", err)
		}

		rows, err := q.ListParts(ctx, db.ListPartsParams{
			Search:      filters.Search,
			VehicleMake: filters.Make,
			Category:    filters.Category,
			Brand:       filters.Brand,
			Condition:   filters.Condition,
			MinPrice:    nullDecimal(filters.MinPrice),
			MaxPrice:    nullDecimal(filters.MaxPrice),
			InStock:     filters.InStock,
			SortBy:      string(sortBy),
			RowLimit:    limit,
			RowOffset:   offset,
		})
		if err != nil {
			return domain.PartPage{}, fmt.Errorf("q.ListParts: %w", err)
		}

		parts, err := mapPartsToDomain(rows)
		if err != nil {
			return domain.PartPage{}, fmt.Errorf("mapPartsToDomain: %w", err)
		}

		return domain.PartPage{Parts: parts, Total: int(total)}, nil
	})
}

func (r *partRepository) GetPart(ctx context.Context, id uuid.UUID) (domain.Part, error) {
	if id == uuid.Nil {
		return domain.Part{}, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetPart(ctx, id)
	if err != nil {
		return domain.Part{}, mapError("q.GetPart", err)
	}

	return mapPartToDomain(row)
}

func (r *partRepository) CreatePart(ctx context.Context, part domain.Part) (domain.Part, error) {
	if err := validatePart(part); err != nil {
		return domain.Part{}, err
	}

	row, err := r.q.CreatePart(ctx, db.CreatePartParams{
		PartNumber:    part.PartNumber,
		Name:          part.Name,
		Description:   part.Description,
		VehicleMake:   part.VehicleMake,
		Category:      part.Category,
		Brand:         part.Brand,
		Condition:     string(part.Condition),
		PriceAmount:   part.Price.Amount,
		PriceCurrency: part.Price.Currency.String(),
		Stock:         int32(part.Stock),
		Image:         part.Image,
	})
	if err != nil {
		return domain.Part{}, mapError("q.CreatePart", err)
	}

	return mapPartToDomain(row)
}

func (r *partRepository) UpdatePart(ctx context.Context, part domain.Part) (domain.Part, error) {
	if part.ID == uuid.Nil {
		return domain.Part{}, fmt.Errorf("id is empty")
	}
	if err := validatePart(part); err != nil {
		return domain.Part{}, err
	}

	row, err := r.q.UpdatePart(ctx, db.UpdatePartParams{
		ID:            part.ID,
		PartNumber:    part.PartNumber,
		Name:          part.Name,
		Description:   part.Description,
		VehicleMake:   part.VehicleMake,
		Category:      part.Category,
		Brand:         part.Brand,
		Condition:     string(part.Condition),
		PriceAmount:   part.Price.Amount,
		PriceCurrency: part.Price.Currency.String(),
		Stock:         int32(part.Stock),
		Image:         part.Image,
	})
	if err != nil {
		return domain.Part{}, mapError("q.UpdatePart", err)
	}

	return mapPartToDomain(row)
}

func (r *partRepository) DeletePart(ctx context.Context, id uuid.UUID) (bool, error) {
	rowsAffected, err := r.q.DeletePart(ctx, id)
	if err != nil {
		return false, mapError("q.DeletePart", err)
	}

	return rowsAffected > 0, nil
}

func validatePart(part domain.Part) error {
	ve := &domain.ValidationError{}
	if part.PartNumber == "" {
		ve.Add("partNumber", "is required")
	}
	if part.Name == "" {
		ve.Add("name", "is required")
	}
	if _, err := domain.ParseCondition(string(part.Condition)); err != nil {
		ve.Add("condition", err.Error())
	}
	if part.Price.IsNegative() {
		ve.Add("price", "must not be negative")
	}
	if part.Stock < 0 {
		ve.Add("stock", "must not be negative")
	}
	return ve.Err()
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func mapPartToDomain(row db.Part) (domain.Part, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Part{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Part{
		ID:          row.ID,
		PartNumber:  row.PartNumber,
		Name:        row.Name,
		Description: row.Description,
		VehicleMake: row.VehicleMake,
		Category:    row.Category,
		Brand:       row.Brand,
		Condition:   domain.Condition(row.Condition),
		Price:       domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Stock:       int(row.Stock),
		Image:       row.Image,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func mapPartsToDomain(rows []db.Part) ([]domain.Part, error) {
	parts := make([]domain.Part, 0, len(rows))

	for _, row := range rows {
		part, err := mapPartToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapPartToDomain: %w", err)
		}

		parts = append(parts, part)
	}

	return parts, nil
}
