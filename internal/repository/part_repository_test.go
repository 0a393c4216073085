package repository_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
	"github.com/nikolayk812/partsdepot/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type partRepositorySuite struct {
	suite.Suite

	repo port.PartRepository
	pool *pgxpool.Pool
}

func TestPartRepositorySuite(t *testing.T) {
	suite.Run(t, new(partRepositorySuite))
}

func (suite *partRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewPart(suite.pool)
}

func (suite *partRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *partRepositorySuite) TestCreatePart() {
	defer suite.deleteAll()

	duplicate := randomPart()

	tests := []struct {
		name      string
		part      domain.Part
		setup     []domain.Part
		wantErrIs error
		wantError bool
	}{
		{
			name: "create part: ok",
			part: randomPart(),
		},
		{
			name:      "duplicate part number: conflict",
			part:      duplicate,
			setup:     []domain.Part{duplicate},
			wantErrIs: domain.ErrConflict,
		},
		{
			name: "negative stock: error",
			part: func() domain.Part {
				p := randomPart()
				p.Stock = -1
				return p
			}(),
			wantError: true,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			for _, p := range tt.setup {
				insertPart(t, suite.pool, p)
			}

			created, err := suite.repo.CreatePart(ctx, tt.part)
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			if tt.wantError {
				var ve *domain.ValidationError
				require.True(t, errors.As(err, &ve))
				return
			}
			require.NoError(t, err)

			assert.NotEqual(t, uuid.Nil, created.ID)

			got, err := suite.repo.GetPart(ctx, created.ID)
			require.NoError(t, err)
			assertPart(t, tt.part, got)
		})
	}
}

func (suite *partRepositorySuite) TestListParts() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	brakes := randomPart()
	brakes.Name = "Brake Pad Set"
	brakes.VehicleMake = "Toyota"
	brakes.Category = "brakes"
	brakes.Price = domain.MustMoney("89.99")
	brakes.Stock = 25

	disc := randomPart()
	disc.Name = "Brake Disc"
	disc.VehicleMake = "Nissan"
	disc.Category = "brakes"
	disc.Price = domain.MustMoney("150.00")
	disc.Stock = 0

	filter := randomPart()
	filter.Name = "Oil Filter"
	filter.VehicleMake = "Toyota"
	filter.Category = "filters"
	filter.Price = domain.MustMoney("12.50")
	filter.Stock = 40

	for _, p := range []domain.Part{brakes, disc, filter} {
		insertPart(t, suite.pool, p)
	}

	minPrice := decimal.RequireFromString("50")

	tests := []struct {
		name      string
		filters   domain.SearchFilters
		wantNames []string
		wantTotal int
	}{
		{
			name:      "no filters, sorted by name: ok",
			filters:   domain.SearchFilters{Limit: 12},
			wantNames: []string{"Brake Disc", "Brake Pad Set", "Oil Filter"},
			wantTotal: 3,
		},
		{
			name:      "search text matches name: ok",
			filters:   domain.SearchFilters{Search: "brake", Limit: 12},
			wantNames: []string{"Brake Disc", "Brake Pad Set"},
			wantTotal: 2,
		},
		{
			name:      "make and category: ok",
			filters:   domain.SearchFilters{Make: "Toyota", Category: "brakes", Limit: 12},
			wantNames: []string{"Brake Pad Set"},
			wantTotal: 1,
		},
		{
			name:      "in stock only, price descending: ok",
			filters:   domain.SearchFilters{InStock: true, SortBy: domain.SortByPriceDesc, Limit: 12},
			wantNames: []string{"Brake Pad Set", "Oil Filter"},
			wantTotal: 2,
		},
		{
			name:      "min price: ok",
			filters:   domain.SearchFilters{MinPrice: &minPrice, SortBy: domain.SortByPrice, Limit: 12},
			wantNames: []string{"Brake Pad Set", "Brake Disc"},
			wantTotal: 2,
		},
		{
			name:      "second page: total is unaffected",
			filters:   domain.SearchFilters{Page: 2, Limit: 2},
			wantNames: []string{"Oil Filter"},
			wantTotal: 3,
		},
		{
			name:      "page beyond last: empty",
			filters:   domain.SearchFilters{Page: 5, Limit: 2},
			wantNames: []string{},
			wantTotal: 3,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			page, err := suite.repo.ListParts(ctx, tt.filters)
			require.NoError(t, err)

			names := make([]string, 0, len(page.Parts))
			for _, p := range page.Parts {
				names = append(names, p.Name)
			}

			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, tt.wantTotal, page.Total)
		})
	}
}

func (suite *partRepositorySuite) TestListParts_PageFarPastEnd() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	insertPart(t, suite.pool, randomPart())

	tests := []struct {
		name  string
		page  int
		limit int
	}{
		{name: "offset wraps to zero in int32: empty", page: 268435457, limit: 16},
		{name: "offset wraps negative in int32: empty", page: 200000000, limit: 12},
		{name: "max int page: empty", page: math.MaxInt, limit: 100},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			page, err := suite.repo.ListParts(ctx, domain.SearchFilters{
				SortBy: domain.DefaultSort,
				Page:   tt.page,
				Limit:  tt.limit,
			})
			suite.Require().NoError(err)

			suite.Empty(page.Parts)
			suite.Equal(1, page.Total)
		})
	}
}

func (suite *partRepositorySuite) TestUpdateAndDeletePart() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	created := insertPart(t, suite.pool, randomPart())

	created.Price = domain.MustMoney("42.00")
	created.Stock = 3
	updated, err := suite.repo.UpdatePart(ctx, created)
	require.NoError(t, err)
	assertPart(t, created, updated)

	deleted, err := suite.repo.DeletePart(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = suite.repo.GetPart(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err = suite.repo.DeletePart(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func (suite *partRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE parts CASCADE")
	suite.NoError(err)
}

func assertPart(t *testing.T, expected, actual domain.Part) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Part{}, "ID", "CreatedAt", "UpdatedAt"),
		moneyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
