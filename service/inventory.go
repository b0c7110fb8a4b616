package service

import (
	"context"

	"github.com/ggasam0/shopmall/dao"
	"github.com/ggasam0/shopmall/dao/cache"
	"github.com/ggasam0/shopmall/inventory"
	"github.com/ggasam0/shopmall/types"
)

type InventoryService struct {
	InventoryDAO *dao.Inventory
	Cache        *cache.InventoryCache
	Strategy     inventory.Strategy
}

var _ IInventoryService = (*InventoryService)(nil)

type IInventoryService interface {
	GetInventory(ctx context.Context, distributorCode string) (*types.InventoryView, error)
	ReplaceInventory(ctx context.Context, distributorCode string, items []types.InventoryItem) error
}

func (s *InventoryService) GetInventory(ctx context.Context, distributorCode string) (*types.InventoryView, error) {
	stocks, err := s.InventoryDAO.FetchInventory(ctx, distributorCode)
	if err != nil {
		return nil, err
	}

	view := &types.InventoryView{DistributorCode: distributorCode}
	for pid, stock := range stocks {
		view.Items = append(view.Items, types.InventoryItem{ProductID: pid, Stock: stock})
	}
	return view, nil
}

// ReplaceInventory 覆盖分销商库存清单，随后刷新持久缓存与策略缓存
func (s *InventoryService) ReplaceInventory(ctx context.Context, distributorCode string, items []types.InventoryItem) error {
	stocks := make(map[uint64]int, len(items))
	for _, item := range items {
		stock := item.Stock
		if stock < 0 {
			stock = 0
		}
		stocks[item.ProductID] = stock
	}

	if err := s.InventoryDAO.Replace(ctx, distributorCode, stocks); err != nil {
		return err
	}
	s.Cache.Store(ctx, distributorCode, stocks)
	s.Strategy.Preload(ctx, distributorCode)
	return nil
}
