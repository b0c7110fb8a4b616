package inventory

import "context"

// PseudoStrategy 无真实库存后端时的演示策略：
// 库存由商品 ID 和分销商 code 的字符和推导，稳定且有差异
type PseudoStrategy struct{}

func NewPseudoStrategy() *PseudoStrategy {
	return &PseudoStrategy{}
}

var _ Strategy = (*PseudoStrategy)(nil)

func (s *PseudoStrategy) StockOf(_ context.Context, productID uint64, distributorCode string) int {
	seed := uint64(0)
	for _, r := range normalizeCode(distributorCode) {
		seed += uint64(r)
	}
	pid := productID
	if pid == 0 {
		pid = 1
	}
	return stockBase + int((pid*7+seed)%stockRange)
}

func (s *PseudoStrategy) Preload(context.Context, string) {}
