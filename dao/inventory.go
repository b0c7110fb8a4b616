package dao

import (
	"context"

	"github.com/ggasam0/shopmall/models"

	"gorm.io/gorm"
)

type Inventory struct {
	Db *gorm.DB
}

func NewInventory(db *gorm.DB) *Inventory {
	return &Inventory{Db: db}
}

// FetchInventory 读取一个分销商的全部库存，实现 inventory.Source
func (i *Inventory) FetchInventory(ctx context.Context, distributorCode string) (map[uint64]int, error) {
	var records []*models.InventoryRecord
	err := i.Db.WithContext(ctx).Where("distributor_code = ?", distributorCode).Find(&records).Error
	if err != nil {
		return nil, err
	}

	stocks := make(map[uint64]int, len(records))
	for _, record := range records {
		stock := record.Stock
		if stock < 0 {
			stock = 0
		}
		stocks[record.ProductID] = stock
	}
	return stocks, nil
}

// Replace 整体替换一个分销商的库存清单
func (i *Inventory) Replace(ctx context.Context, distributorCode string, stocks map[uint64]int) error {
	return i.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("distributor_code = ?", distributorCode).Delete(&models.InventoryRecord{}).Error
		if err != nil {
			return err
		}
		if len(stocks) == 0 {
			return nil
		}
		records := make([]*models.InventoryRecord, 0, len(stocks))
		for pid, stock := range stocks {
			if stock < 0 {
				stock = 0
			}
			records = append(records, &models.InventoryRecord{
				DistributorCode: distributorCode,
				ProductID:       pid,
				Stock:           stock,
			})
		}
		return tx.Create(records).Error
	})
}
