package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/api"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/httpapi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("PARTSDEPOT_JWT_SECRET", "cli-secret")

	out, err := execute(t, "token", "--subject", "ops@partsdepot.mu", "--role", "admin")
	require.NoError(t, err)

	claims, err := httpapi.ParseToken([]byte("cli-secret"), string(bytes.TrimSpace([]byte(out))))
	require.NoError(t, err)
	assert.Equal(t, "ops@partsdepot.mu", claims.Subject)
	assert.Equal(t, string(domain.RoleAdmin), claims.Role)
}

func TestTokenCommand_UnknownRole(t *testing.T) {
	t.Setenv("PARTSDEPOT_JWT_SECRET", "cli-secret")

	_, err := execute(t, "token", "--subject", "ops@partsdepot.mu", "--role", "mechanic")
	require.Error(t, err)
}

func TestPartsSearchCommand(t *testing.T) {
	var (
		mu      sync.Mutex
		queries []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/parts" {
			http.NotFound(w, r)
			return
		}
		mu.Lock()
		queries = append(queries, r.URL.RawQuery)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.PartPage{
			Parts: []api.Part{{
				ID:         uuid.New(),
				PartNumber: "BRK001",
				Name:       "Front brake pads",
				Make:       "Toyota",
				Category:   "Brakes",
				Brand:      "Bosch",
				Condition:  "new",
				Price:      decimal.RequireFromString("89.99"),
				Currency:   "MUR",
				Stock:      12,
				InStock:    true,
				CreatedAt:  time.Now().UTC(),
				UpdatedAt:  time.Now().UTC(),
			}},
			Total: 1,
		})
	}))
	t.Cleanup(srv.Close)
	t.Setenv("PARTSDEPOT_API_URL", srv.URL)

	out, err := execute(t, "parts", "search", "--category", "Brakes", "--in-stock", "--wait", "5s")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, slices.ContainsFunc(queries, func(q string) bool {
		return strings.Contains(q, "category=Brakes") && strings.Contains(q, "inStock=true")
	}), "queries: %v", queries)
	assert.Contains(t, out, "BRK001")
	assert.Contains(t, out, "Front brake pads")
	assert.Contains(t, out, "page 1 of 1, 1 parts")
}
