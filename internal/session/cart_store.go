package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	keyPrefix  = "partsdepot:cart:"
	DefaultTTL = 7 * 24 * time.Hour
)

type cartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore keeps guest carts in Redis. Every read or write pushes the
// expiry ttl into the future.
func NewCartStore(client *redis.Client, ttl time.Duration) port.CartStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &cartStore{
		client: client,
		ttl:    ttl,
	}
}

func NewSessionID() string {
	return uuid.NewString()
}

func (s *cartStore) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	if sessionID == "" {
		return domain.Cart{}, fmt.Errorf("sessionID is empty")
	}

	key := keyPrefix + sessionID

	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{OwnerID: sessionID}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("client.Get: %w", err)
	}

	var stored storedCart
	if err := json.Unmarshal(raw, &stored); err != nil {
		return domain.Cart{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	cart, err := stored.toDomain(sessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("stored.toDomain: %w", err)
	}

	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("client.Expire: %w", err)
	}

	return cart, nil
}

// Save stores the cart, or deletes the key when the cart is empty.
func (s *cartStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is empty")
	}

	if cart.IsEmpty() {
		return s.Delete(ctx, sessionID)
	}

	raw, err := json.Marshal(fromDomain(cart))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

func (s *cartStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is empty")
	}

	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}

type storedCart struct {
	Items []storedItem `json:"items"`
}

type storedItem struct {
	PartID     uuid.UUID       `json:"partId"`
	PartNumber string          `json:"partNumber"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency"`
	Quantity   int             `json:"quantity"`
	Stock      int             `json:"stock"`
	Image      string          `json:"image,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func fromDomain(cart domain.Cart) storedCart {
	items := make([]storedItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, storedItem{
			PartID:     item.PartID,
			PartNumber: item.PartNumber,
			Name:       item.Name,
			Price:      item.Price.Amount,
			Currency:   item.Price.Currency.String(),
			Quantity:   item.Quantity,
			Stock:      item.Stock,
			Image:      item.Image,
			CreatedAt:  item.CreatedAt,
		})
	}
	return storedCart{Items: items}
}

func (c storedCart) toDomain(sessionID string) (domain.Cart, error) {
	items := make([]domain.CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		parsedCurrency, err := currency.ParseISO(item.Currency)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("currency[%s] is not valid: %w", item.Currency, err)
		}

		items = append(items, domain.CartItem{
			PartID:     item.PartID,
			PartNumber: item.PartNumber,
			Name:       item.Name,
			Price:      domain.Money{Amount: item.Price, Currency: parsedCurrency},
			Quantity:   item.Quantity,
			Stock:      item.Stock,
			Image:      item.Image,
			CreatedAt:  item.CreatedAt,
		})
	}

	return domain.Cart{OwnerID: sessionID, Items: items}, nil
}
