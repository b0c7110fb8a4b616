package inventory

import "context"

// RosterStrategy 按分销商在固定名单中的位置推导库存，
// 未知 code 视为名单首位
type RosterStrategy struct {
	index map[string]int
}

func NewRosterStrategy(codes []string) *RosterStrategy {
	index := make(map[string]int, len(codes))
	for i, code := range codes {
		normalized := normalizeCode(code)
		if _, exists := index[normalized]; exists {
			continue
		}
		index[normalized] = i
	}
	return &RosterStrategy{index: index}
}

var _ Strategy = (*RosterStrategy)(nil)

func (s *RosterStrategy) StockOf(_ context.Context, productID uint64, distributorCode string) int {
	idx := s.index[normalizeCode(distributorCode)]
	return stockBase + int((productID*7+uint64(idx)*11)%stockRange)
}

func (s *RosterStrategy) Preload(context.Context, string) {}
