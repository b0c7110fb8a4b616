package cart

import (
	"context"

	"github.com/ggasam0/shopmall/inventory"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Manager 按会话 ID 管理购物车，会话在登出或清理时销毁。
// 同一会话切换分销商时直接换成新的空购物车（不迁移旧条目）
type Manager struct {
	stores  cmap.ConcurrentMap[string, *Store]
	stockOf StockFunc
}

func NewManager(strategy inventory.Strategy) *Manager {
	return &Manager{
		stores: cmap.New[*Store](),
		stockOf: func(ctx context.Context, productID uint64, distributorCode string) int {
			return strategy.StockOf(ctx, productID, distributorCode)
		},
	}
}

// Session 返回会话对应的购物车。空会话 ID 会分配新 ID，
// 分销商 code 与现有购物车不一致时重建购物车
func (m *Manager) Session(sessionID, distributorCode string) (string, *Store) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if store, ok := m.stores.Get(sessionID); ok && store.Code() == distributorCode {
		return sessionID, store
	}

	store := NewStore(distributorCode, m.stockOf)
	m.stores.Set(sessionID, store)
	return sessionID, store
}

// Drop 销毁会话购物车
func (m *Manager) Drop(sessionID string) {
	if sessionID == "" {
		return
	}
	m.stores.Remove(sessionID)
}
