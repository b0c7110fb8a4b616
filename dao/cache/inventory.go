package cache

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/ggasam0/shopmall/pkg/log"

	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// InventoryCache 持久化的分销商库存缓存，实现 inventory.DurableCache。
// 值是 JSON 对象：商品 ID 字符串 -> 库存数
type InventoryCache struct {
	redis *redis.Client
}

func NewInventoryCache(redis *redis.Client) *InventoryCache {
	return &InventoryCache{redis: redis}
}

func (c *InventoryCache) key(distributorCode string) string {
	return "distributorInventory:" + distributorCode
}

// Load 读取缓存。缺失、损坏或字段不合法都按"没有缓存"处理，
// 单个坏条目按 0 库存计
func (c *InventoryCache) Load(ctx context.Context, distributorCode string) (map[uint64]int, bool) {
	raw, err := c.redis.Get(ctx, c.key(distributorCode)).Result()
	if err != nil {
		if err != redis.Nil {
			log.L.Warn("load inventory cache failed",
				zap.String("distributor", distributorCode), zap.Error(err))
		}
		return nil, false
	}

	parsed := gjson.Parse(raw)
	if !parsed.IsObject() {
		return nil, false
	}

	stocks := make(map[uint64]int)
	parsed.ForEach(func(key, value gjson.Result) bool {
		pid, err := strconv.ParseUint(key.String(), 10, 64)
		if err != nil {
			return true
		}
		stock := int(value.Int())
		if stock < 0 {
			stock = 0
		}
		stocks[pid] = stock
		return true
	})
	return stocks, true
}

// Store 覆盖写入，失败只记日志
func (c *InventoryCache) Store(ctx context.Context, distributorCode string, stocks map[uint64]int) {
	payload := make(map[string]int, len(stocks))
	for pid, stock := range stocks {
		payload[strconv.FormatUint(pid, 10)] = stock
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		log.L.Warn("marshal inventory cache failed",
			zap.String("distributor", distributorCode), zap.Error(err))
		return
	}
	if err := c.redis.Set(ctx, c.key(distributorCode), raw, 0).Err(); err != nil {
		log.L.Warn("store inventory cache failed",
			zap.String("distributor", distributorCode), zap.Error(err))
	}
}
