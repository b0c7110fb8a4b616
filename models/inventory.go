package models

import "time"

// InventoryRecord 分销商维度的商品库存
type InventoryRecord struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DistributorCode string    `gorm:"column:distributor_code;type:varchar(32);not null;uniqueIndex:idx_dist_product,priority:1" json:"distributor_code"`
	ProductID       uint64    `gorm:"column:product_id;not null;uniqueIndex:idx_dist_product,priority:2" json:"product_id"`
	Stock           int       `gorm:"column:stock;not null;default:0" json:"stock"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (InventoryRecord) TableName() string {
	return "inventory_records"
}
