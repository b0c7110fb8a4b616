package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name       string         `gorm:"column:name;type:varchar(255);not null;index:idx_name" json:"name"`
	Category   string         `gorm:"column:category;type:varchar(64);not null;index:idx_category" json:"category"`
	Price      float64        `gorm:"column:price;not null;default:0" json:"price"`
	ImageURL   string         `gorm:"column:image_url;type:varchar(512);default:''" json:"image_url"`
	Tags       string         `gorm:"column:tags;type:varchar(255);default:''" json:"tags"`
	IsFeatured bool           `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
