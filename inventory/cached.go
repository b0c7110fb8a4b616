package inventory

import (
	"context"
	"time"

	"github.com/ggasam0/shopmall/pkg/log"

	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
)

// Source 权威库存来源（数据库或上游服务）
type Source interface {
	FetchInventory(ctx context.Context, distributorCode string) (map[uint64]int, error)
}

// DurableCache 按分销商 code 持久化的库存缓存。
// Load 吸收解析错误：损坏的缓存视为不存在
type DurableCache interface {
	Load(ctx context.Context, distributorCode string) (map[uint64]int, bool)
	Store(ctx context.Context, distributorCode string, stocks map[uint64]int)
}

// 单次预热的远端调用上限
const preloadTimeout = 10 * time.Second

// CachedStrategy 远端取数 + 内存/持久双层缓存。
// Preload 失败时退回持久缓存里的旧数据，绝不向调用方抛错
type CachedStrategy struct {
	source  Source
	durable DurableCache
	mem     cmap.ConcurrentMap[string, map[uint64]int]
}

func NewCachedStrategy(source Source, durable DurableCache) *CachedStrategy {
	return &CachedStrategy{
		source:  source,
		durable: durable,
		mem:     cmap.New[map[uint64]int](),
	}
}

var _ Strategy = (*CachedStrategy)(nil)

func (s *CachedStrategy) Preload(ctx context.Context, distributorCode string) {
	code := normalizeCode(distributorCode)
	if code == "" {
		code = "default"
	}

	fetchCtx, cancel := context.WithTimeout(ctx, preloadTimeout)
	defer cancel()

	stocks, err := s.source.FetchInventory(fetchCtx, code)
	if err != nil {
		log.L.Warn("inventory preload failed, falling back to durable cache",
			zap.String("distributor", code), zap.Error(err))
		cached, ok := s.durable.Load(ctx, code)
		if !ok {
			cached = map[uint64]int{}
		}
		s.mem.Set(code, cached)
		return
	}

	normalized := normalizeStocks(stocks)
	s.mem.Set(code, normalized)
	s.durable.Store(ctx, code, normalized)
}

func (s *CachedStrategy) StockOf(ctx context.Context, productID uint64, distributorCode string) int {
	code := normalizeCode(distributorCode)
	if code == "" {
		code = "default"
	}

	if stocks, ok := s.mem.Get(code); ok {
		return stocks[productID]
	}
	if stocks, ok := s.durable.Load(ctx, code); ok {
		s.mem.Set(code, stocks)
		return stocks[productID]
	}
	return 0
}

func normalizeStocks(stocks map[uint64]int) map[uint64]int {
	normalized := make(map[uint64]int, len(stocks))
	for pid, stock := range stocks {
		if stock < 0 {
			stock = 0
		}
		normalized[pid] = stock
	}
	return normalized
}
