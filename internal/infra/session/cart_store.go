package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

const guestCartKeyPrefix = "cart:guest:"

// cartStore keeps each guest cart as a JSON blob keyed by session id, with
// a TTL so abandoned carts expire on their own.
type cartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCartStore is the constructor for the redis guest cart store.
func NewCartStore(rdb *redis.Client, cfg *config.Config) repository.CartStore {
	return &cartStore{
		rdb: rdb,
		ttl: cfg.Session.CartTTL,
	}
}

func (s *cartStore) Load(ctx context.Context, sessionID string) (*entity.Cart, error) {
	value, err := s.rdb.Get(ctx, guestCartKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &entity.Cart{}, nil
		}

		return nil, errors.Wrap(err, "load guest cart")
	}

	cart := &entity.Cart{}
	if err := json.Unmarshal([]byte(value), cart); err != nil {
		return nil, errors.Wrap(err, "unmarshal guest cart")
	}

	return cart, nil
}

func (s *cartStore) Save(ctx context.Context, sessionID string, cart *entity.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "marshal guest cart")
	}

	return errors.Wrap(
		s.rdb.Set(ctx, guestCartKeyPrefix+sessionID, payload, s.ttl).Err(),
		"save guest cart",
	)
}

func (s *cartStore) Delete(ctx context.Context, sessionID string) error {
	return errors.Wrap(
		s.rdb.Del(ctx, guestCartKeyPrefix+sessionID).Err(),
		"delete guest cart",
	)
}
