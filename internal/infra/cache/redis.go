package cache

import (
	"context"
	"encoding/json"
	"time"

	"app/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// 在庫は調整のたびに変わるのでTTLは短めにする
const productTTL = 5 * time.Minute

type ProductCache struct {
	client *redis.Client
}

// NewProductCacheは接続確認してから返す。
func NewProductCache(addr string) (*ProductCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &ProductCache{client: client}, nil
}

func productKey(id string) string {
	return "product:" + id
}

// 読めなければキャッシュミス扱い。エラーでリクエストは落とさない。
func (c *ProductCache) GetProduct(ctx context.Context, id string) (model.Product, bool) {
	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		return model.Product{}, false
	}

	var p model.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Product{}, false
	}
	return p, true
}

func (c *ProductCache) SetProduct(ctx context.Context, p model.Product) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, productKey(p.ID), data, productTTL).Err()
}

// 調整のコミット後に呼ぶ
func (c *ProductCache) DeleteProduct(ctx context.Context, id string) {
	_ = c.client.Del(ctx, productKey(id)).Err()
}
