package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	scripts, err := filepath.Glob("../migrations/*.up.sql")
	if err != nil {
		return nil, "", fmt.Errorf("filepath.Glob: %w", err)
	}

	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(scripts...),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func randomPart() domain.Part {
	return domain.Part{
		PartNumber:  gofakeit.LetterN(3) + gofakeit.DigitN(4),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.Sentence(8),
		VehicleMake: gofakeit.RandomString([]string{"Toyota", "Nissan", "Suzuki", "Honda"}),
		Category:    gofakeit.RandomString([]string{"brakes", "filters", "engine", "suspension"}),
		Brand:       gofakeit.RandomString([]string{"Bosch", "Denso", "NGK", "Brembo"}),
		Condition:   domain.ConditionNew,
		Price:       randomMoney(),
		Stock:       gofakeit.IntRange(1, 50),
		Image:       gofakeit.URL(),
	}
}

func randomMoney() domain.Money {
	return domain.NewMoney(decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2))
}

func insertPart(t *testing.T, pool *pgxpool.Pool, part domain.Part) domain.Part {
	t.Helper()

	created, err := repository.NewPart(pool).CreatePart(t.Context(), part)
	require.NoError(t, err)

	return created
}

var moneyComparer = cmp.Options{
	cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	}),
	cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	}),
}
