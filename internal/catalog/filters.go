package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/shopspring/decimal"
)

// PageSize is the fixed number of parts per catalog page.
const PageSize = 12

// All is the select-box sentinel meaning "no filter".
const All = "all"

const (
	paramSearch    = "search"
	paramMake      = "make"
	paramCategory  = "category"
	paramBrand     = "brand"
	paramCondition = "condition"
	paramMinPrice  = "minPrice"
	paramMaxPrice  = "maxPrice"
	paramInStock   = "inStock"
	paramSortBy    = "sortBy"
	paramPage      = "page"
	paramLimit     = "limit"
)

// Filters is the filter state of the catalog page as the user entered it.
// Price bounds stay raw text until ParseParams validates them.
type Filters struct {
	Search    string
	Make      string
	Category  string
	Brand     string
	Condition string
	MinPrice  string
	MaxPrice  string
	InStock   bool
}

// BuildParams maps the UI state to listing query parameters. Unset filters
// are omitted; page, limit and sortBy are always present.
func BuildParams(f Filters, page int, sortBy domain.SortKey) url.Values {
	params := url.Values{}

	if search := strings.TrimSpace(f.Search); search != "" {
		params.Set(paramSearch, search)
	}
	setIfSet(params, paramMake, f.Make)
	setIfSet(params, paramCategory, f.Category)
	setIfSet(params, paramBrand, f.Brand)
	setIfSet(params, paramCondition, f.Condition)
	setIfSet(params, paramMinPrice, f.MinPrice)
	setIfSet(params, paramMaxPrice, f.MaxPrice)
	if f.InStock {
		params.Set(paramInStock, "true")
	}

	if page < 1 {
		page = 1
	}
	if sortBy == "" {
		sortBy = domain.DefaultSort
	}

	params.Set(paramPage, strconv.Itoa(page))
	params.Set(paramLimit, strconv.Itoa(PageSize))
	params.Set(paramSortBy, string(sortBy))

	return params
}

// EncodeParams is the inverse of ParseParams.
func EncodeParams(f domain.SearchFilters) url.Values {
	params := BuildParams(Filters{
		Search:    f.Search,
		Make:      f.Make,
		Category:  f.Category,
		Brand:     f.Brand,
		Condition: f.Condition,
		MinPrice:  decimalString(f.MinPrice),
		MaxPrice:  decimalString(f.MaxPrice),
		InStock:   f.InStock,
	}, f.Page, f.SortBy)

	if f.Limit > 0 {
		params.Set(paramLimit, strconv.Itoa(f.Limit))
	}

	return params
}

// ParseParams validates listing query parameters. A missing limit defaults
// to PageSize; a page past the last one is accepted and yields no parts.
func ParseParams(params url.Values) (domain.SearchFilters, error) {
	ve := &domain.ValidationError{}

	f := domain.SearchFilters{
		Search:    strings.TrimSpace(params.Get(paramSearch)),
		Make:      unset(params.Get(paramMake)),
		Category:  unset(params.Get(paramCategory)),
		Brand:     unset(params.Get(paramBrand)),
		Condition: unset(params.Get(paramCondition)),
		Page:      1,
		Limit:     PageSize,
	}

	if f.Condition != "" {
		if _, err := domain.ParseCondition(f.Condition); err != nil {
			ve.Add(paramCondition, err.Error())
		}
	}

	f.MinPrice = parseBound(ve, paramMinPrice, params.Get(paramMinPrice))
	f.MaxPrice = parseBound(ve, paramMaxPrice, params.Get(paramMaxPrice))
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		ve.Add(paramMinPrice, "must not exceed maxPrice")
	}

	if raw := params.Get(paramInStock); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			ve.Add(paramInStock, fmt.Sprintf("inStock[%s] is not a boolean", raw))
		}
		f.InStock = inStock
	}

	sortBy, err := domain.ParseSortKey(params.Get(paramSortBy))
	if err != nil {
		ve.Add(paramSortBy, err.Error())
	}
	f.SortBy = sortBy

	f.Page = parsePositive(ve, paramPage, params.Get(paramPage), 1)
	f.Limit = parsePositive(ve, paramLimit, params.Get(paramLimit), PageSize)
	if f.Limit > 100 {
		ve.Add(paramLimit, "must not exceed 100")
	}

	if err := ve.Err(); err != nil {
		return domain.SearchFilters{}, err
	}

	return f, nil
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ClampPage keeps page within [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

func setIfSet(params url.Values, key, value string) {
	if value = unset(value); value != "" {
		params.Set(key, value)
	}
}

// unset maps the select-box sentinel to "no filter". Free text never goes
// through it.
func unset(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, All) {
		return ""
	}
	return value
}

func parseBound(ve *domain.ValidationError, field, raw string) *decimal.Decimal {
	if raw = strings.TrimSpace(raw); raw == "" {
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		ve.Add(field, fmt.Sprintf("%s[%s] is not a number", field, raw))
		return nil
	}
	if d.IsNegative() {
		ve.Add(field, "must not be negative")
		return nil
	}

	return &d
}

func parsePositive(ve *domain.ValidationError, field, raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		ve.Add(field, fmt.Sprintf("%s[%s] is not a positive integer", field, raw))
		return fallback
	}

	return n
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
