package cart

import (
	"context"
	"encoding/json"

	"github.com/Omarrio321/Aran-Repairs/models"
	"github.com/Omarrio321/Aran-Repairs/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cartKeyPrefix = "cart:"

// RedisStore keeps each cart as a JSON blob under cart:<id>. Carts have no
// TTL; they live until cleared.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context, cartID string) ([]models.CartItem, error) {
	data, err := s.client.Get(ctx, cartKeyPrefix+cartID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeItems(cartID, []byte(data)), nil
}

// decodeItems deserializes a stored cart blob. A corrupt blob degrades to
// an empty cart; the customer never sees the failure.
func decodeItems(cartID string, data []byte) []models.CartItem {
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		utils.GetLogger().Warn("Discarding unreadable cart blob",
			zap.String("cartID", cartID), zap.Error(err))
		return nil
	}
	return items
}

func (s *RedisStore) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKeyPrefix+cartID, b, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, cartID string) error {
	return s.client.Del(ctx, cartKeyPrefix+cartID).Err()
}
