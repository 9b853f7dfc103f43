package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"moesjerky_back_end/internal/models"
)

const (
	ItemsCacheTTL    = 10 * time.Minute
	FeaturedCacheTTL = 5 * time.Minute

	itemsKey    = "items"
	featuredKey = "featured-product"
)

// Cache est un cache de lecture Redis pour le catalogue et la config
// vitrine. Toutes les méthodes sont best-effort : sans Redis (cache nil ou
// non configuré), tout passe pour un miss et on retombe sur Mongo.
type Cache struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

func (c *Cache) enabled() bool {
	return c != nil && c.rdb != nil
}

// GetItems récupère le catalogue depuis Redis, (nil, false) sur miss.
func (c *Cache) GetItems(ctx context.Context) ([]models.Item, bool) {
	if !c.enabled() {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, itemsKey).Result()
	if err != nil {
		return nil, false
	}
	var items []models.Item
	if json.Unmarshal([]byte(data), &items) != nil {
		return nil, false
	}
	return items, true
}

func (c *Cache) SetItems(ctx context.Context, items []models.Item) {
	if !c.enabled() {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, itemsKey, data, ItemsCacheTTL)
}

// InvalidateItems invalide le cache catalogue après une écriture.
func (c *Cache) InvalidateItems(ctx context.Context) {
	if !c.enabled() {
		return
	}
	c.rdb.Del(ctx, itemsKey)
}

func (c *Cache) GetFeatured(ctx context.Context) (*models.FeaturedProduct, bool) {
	if !c.enabled() {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, featuredKey).Result()
	if err != nil {
		return nil, false
	}
	var doc models.FeaturedProduct
	if json.Unmarshal([]byte(data), &doc) != nil {
		return nil, false
	}
	return &doc, true
}

func (c *Cache) SetFeatured(ctx context.Context, doc *models.FeaturedProduct) {
	if !c.enabled() {
		return
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, featuredKey, data, FeaturedCacheTTL)
}

func (c *Cache) InvalidateFeatured(ctx context.Context) {
	if !c.enabled() {
		return
	}
	c.rdb.Del(ctx, featuredKey)
}
