package dao

import (
	"context"

	"github.com/ggasam0/shopmall/models"

	"gorm.io/gorm"
)

type Order struct {
	Db *gorm.DB
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{Db: db}
}

func (o *Order) Create(ctx context.Context, order *models.Order) error {
	return o.Db.WithContext(ctx).Create(order).Error
}

func (o *Order) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := o.Db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *Order) List(ctx context.Context) ([]*models.Order, error) {
	var orders []*models.Order
	if err := o.Db.WithContext(ctx).Order("id desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *Order) ListByUser(ctx context.Context, userID int64) ([]*models.Order, error) {
	var orders []*models.Order
	err := o.Db.WithContext(ctx).Where("user_id = ?", userID).Order("id desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *Order) UpdateStatus(ctx context.Context, id int64, status string) error {
	return o.Db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (o *Order) Count(ctx context.Context) (int64, error) {
	var count int64
	err := o.Db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error
	return count, err
}
