// Package inventory 把 (商品, 分销商) 映射为可售库存。
// 三种互斥策略在装配期选定一种，StockOf 对任意输入都返回非负整数。
package inventory

import (
	"context"
	"strings"
)

type Strategy interface {
	// StockOf 查询指定分销商下某商品的库存，未知输入返回 0 或策略推导值
	StockOf(ctx context.Context, productID uint64, distributorCode string) int
	// Preload 预热指定分销商的库存缓存，失败不向调用方传播
	Preload(ctx context.Context, distributorCode string)
}

const (
	StrategyPseudo = "pseudo"
	StrategyCached = "cached"
	StrategyRoster = "roster"
)

const (
	stockBase  = 18
	stockRange = 30
)

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
