package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order 订单主表，状态取值见 stats 包的状态闭集
type Order struct {
	ID              int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber     string         `gorm:"column:order_number;type:varchar(32);not null;uniqueIndex:idx_order_number" json:"order_number"`
	UserID          int64          `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	DistributorCode string         `gorm:"column:distributor_code;type:varchar(32);index:idx_distributor_code" json:"distributor_code"`
	Status          string         `gorm:"column:status;type:varchar(20);not null" json:"status"`
	Total           float64        `gorm:"column:total;not null;default:0" json:"total"`
	Items           datatypes.JSON `gorm:"column:items" json:"items"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
