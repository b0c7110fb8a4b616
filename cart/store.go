// Package cart 持有一次会话的购物车，数量上限来自所属分销商的库存。
package cart

import (
	"context"
	"sync"
)

// Product 进入购物车的商品快照
type Product struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

// Item 购物车行项目，Quantity 恒大于 0
type Item struct {
	Product
	Quantity int `json:"quantity"`
}

// StockFunc 查询某分销商下商品的库存上限
type StockFunc func(ctx context.Context, productID uint64, distributorCode string) int

// Store 绑定单个分销商 code 的购物车。
// 切换分销商时应构造新 Store，而不是改写已有实例
type Store struct {
	mu      sync.Mutex
	code    string
	stockOf StockFunc
	items   []Item
}

func NewStore(distributorCode string, stockOf StockFunc) *Store {
	return &Store{
		code:    distributorCode,
		stockOf: stockOf,
	}
}

func (s *Store) Code() string {
	return s.code
}

// AddItem 加购。已有条目累加后按库存截断，新条目按库存截断后插入；
// 数量不为正时不做任何事
func (s *Store) AddItem(ctx context.Context, product Product, quantity int) {
	if quantity <= 0 {
		return
	}
	stock := s.stockOf(ctx, product.ID, s.code)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == product.ID {
			next := s.items[i].Quantity + quantity
			if next > stock {
				next = stock
			}
			if next <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
				return
			}
			s.items[i].Quantity = next
			return
		}
	}

	if stock <= 0 {
		return
	}
	if quantity > stock {
		quantity = stock
	}
	s.items = append(s.items, Item{Product: product, Quantity: quantity})
}

// UpdateQuantity 把数量钳制到 [0, 库存]，钳制后为 0 则移除该条目
func (s *Store) UpdateQuantity(ctx context.Context, productID uint64, quantity int) {
	stock := s.stockOf(ctx, productID, s.code)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != productID {
			continue
		}
		if quantity < 0 {
			quantity = 0
		}
		if quantity > stock {
			quantity = stock
		}
		if quantity == 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
		s.items[i].Quantity = quantity
		return
	}
}

// RemoveItem 无条件移除，重复移除是个空操作
func (s *Store) RemoveItem(productID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items 返回当前条目的副本
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Total 每次调用都重新求和，不缓存
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
