package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/catalog"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

const featureSession = "feature-session"

type storefrontFeature struct {
	t *testing.T

	f       *fixture
	byCode  map[string]uuid.UUID
	cart    domain.Cart
	lastAdd domain.AddResult

	filters catalog.Filters
	params  url.Values

	order domain.Order
	err   error
}

func (s *storefrontFeature) reset() {
	s.f = newFixture(s.t)
	s.byCode = map[string]uuid.UUID{}
	s.cart = domain.Cart{}
	s.lastAdd = domain.AddResult{}
	s.filters = catalog.Filters{}
	s.params = nil
	s.order = domain.Order{}
	s.err = nil
}

func (s *storefrontFeature) aPartPricedWithInStock(code, price string, stock int) error {
	part := domain.Part{
		ID:         uuid.New(),
		PartNumber: code,
		Name:       code,
		Condition:  domain.ConditionNew,
		Price:      domain.MustMoney(price),
		Stock:      stock,
	}
	s.f.parts.parts[part.ID] = part
	s.byCode[code] = part.ID
	return nil
}

func (s *storefrontFeature) iAddToMyCart(ctx context.Context, code string) error {
	id, ok := s.byCode[code]
	if !ok {
		return fmt.Errorf("part %s is not in the catalog", code)
	}

	cart, result, err := s.f.store.AddToCart(ctx, featureSession, id)
	if err != nil {
		return err
	}
	s.cart = cart
	s.lastAdd = result
	return nil
}

func (s *storefrontFeature) myCartHasLines(n int) error {
	if got := len(s.cart.Items); got != n {
		return fmt.Errorf("cart has %d lines, want %d", got, n)
	}
	return nil
}

func (s *storefrontFeature) theCartLineHasQuantity(code string, quantity int) error {
	item, ok := s.cart.GetItem(s.byCode[code])
	if !ok {
		return fmt.Errorf("%s is not in the cart", code)
	}
	if item.Quantity != quantity {
		return fmt.Errorf("%s quantity is %d, want %d", code, item.Quantity, quantity)
	}
	return nil
}

func (s *storefrontFeature) theCartTotalIs(total string) error {
	return expectMoney("cart total", s.cart.TotalPrice(), total)
}

func (s *storefrontFeature) theLastAddWasClamped() error {
	if !s.lastAdd.Clamped {
		return errors.New("last add was not clamped")
	}
	return nil
}

func (s *storefrontFeature) theCatalogFiltersCategoryAndInStockOnly(category string) error {
	s.filters.Category = category
	s.filters.InStock = true
	return nil
}

func (s *storefrontFeature) iBuildTheCatalogQueryForPage(page int) error {
	s.params = catalog.BuildParams(s.filters, page, domain.DefaultSort)
	return nil
}

func (s *storefrontFeature) theQueryStringContains(fragment string) error {
	if encoded := s.params.Encode(); !strings.Contains(encoded, fragment) {
		return fmt.Errorf("query %q does not contain %q", encoded, fragment)
	}
	return nil
}

func (s *storefrontFeature) theQueryHasNoParameter(name string) error {
	if s.params.Has(name) {
		return fmt.Errorf("query has %s=%s", name, s.params.Get(name))
	}
	return nil
}

func (s *storefrontFeature) iCheckOutWithShipping(ctx context.Context, method string) error {
	s.order, s.err = s.f.store.Checkout(ctx, featureSession, checkoutRequest(domain.ShippingMethod(method)))
	return nil
}

func (s *storefrontFeature) orderAmount(field string) func(string) error {
	return func(want string) error {
		if s.err != nil {
			return fmt.Errorf("checkout failed: %w", s.err)
		}

		totals := s.order.Totals
		got := map[string]domain.Money{
			"subtotal": totals.Subtotal,
			"shipping": totals.Shipping,
			"tax":      totals.Tax,
			"total":    totals.Total,
		}[field]

		return expectMoney("order "+field, got, want)
	}
}

func (s *storefrontFeature) myCartIsEmpty(ctx context.Context) error {
	cart, err := s.f.store.Cart(ctx, featureSession)
	if err != nil {
		return err
	}
	if !cart.IsEmpty() {
		return fmt.Errorf("cart still has %d items", cart.TotalItems())
	}
	return nil
}

func (s *storefrontFeature) checkoutFailsBecauseTheCartIsEmpty() error {
	if !errors.Is(s.err, domain.ErrEmptyCart) {
		return fmt.Errorf("checkout error is %v, want %v", s.err, domain.ErrEmptyCart)
	}
	return nil
}

func expectMoney(what string, got domain.Money, want string) error {
	if !got.Equal(domain.MustMoney(want)) {
		return fmt.Errorf("%s is %s, want %s", what, got, want)
	}
	return nil
}

func TestFeatures(t *testing.T) {
	sf := &storefrontFeature{t: t}

	suite := godog.TestSuite{
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
				sf.reset()
				return ctx, nil
			})

			// Given
			ctx.Step(`^a part "([^"]*)" priced (\d+\.\d+) with (\d+) in stock$`, sf.aPartPricedWithInStock)
			ctx.Step(`^the catalog filters category "([^"]*)" and in stock only$`, sf.theCatalogFiltersCategoryAndInStockOnly)

			// When
			ctx.Step(`^I add "([^"]*)" to my cart$`, sf.iAddToMyCart)
			ctx.Step(`^I build the catalog query for page (\d+)$`, sf.iBuildTheCatalogQueryForPage)
			ctx.Step(`^I check out with "([^"]*)" shipping$`, sf.iCheckOutWithShipping)

			// Then
			ctx.Step(`^my cart has (\d+) lines?$`, sf.myCartHasLines)
			ctx.Step(`^the cart line "([^"]*)" has quantity (\d+)$`, sf.theCartLineHasQuantity)
			ctx.Step(`^the cart total is (\d+\.\d+)$`, sf.theCartTotalIs)
			ctx.Step(`^the last add was clamped$`, sf.theLastAddWasClamped)
			ctx.Step(`^the query string contains "([^"]*)"$`, sf.theQueryStringContains)
			ctx.Step(`^the query has no "([^"]*)" parameter$`, sf.theQueryHasNoParameter)
			ctx.Step(`^the order subtotal is (\d+\.\d+)$`, sf.orderAmount("subtotal"))
			ctx.Step(`^the order shipping is (\d+\.\d+)$`, sf.orderAmount("shipping"))
			ctx.Step(`^the order tax is (\d+\.\d+)$`, sf.orderAmount("tax"))
			ctx.Step(`^the order total is (\d+\.\d+)$`, sf.orderAmount("total"))
			ctx.Step(`^my cart is empty$`, sf.myCartIsEmpty)
			ctx.Step(`^checkout fails because the cart is empty$`, sf.checkoutFailsBecauseTheCartIsEmpty)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/storefront.feature"},
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
