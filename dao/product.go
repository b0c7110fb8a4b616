package dao

import (
	"context"

	"github.com/ggasam0/shopmall/models"

	"gorm.io/gorm"
)

type Product struct {
	Db *gorm.DB
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{Db: db}
}

func (p *Product) Create(ctx context.Context, product *models.Product) error {
	return p.Db.WithContext(ctx).Create(product).Error
}

func (p *Product) CreateBatch(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}
	return p.Db.WithContext(ctx).Create(products).Error
}

func (p *Product) List(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	if err := p.Db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *Product) GetByID(ctx context.Context, id uint64) (*models.Product, error) {
	var product models.Product
	if err := p.Db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *Product) CountFeatured(ctx context.Context) (int64, error) {
	var count int64
	err := p.Db.WithContext(ctx).Model(&models.Product{}).Where("is_featured = ?", true).Count(&count).Error
	return count, err
}

func (p *Product) Count(ctx context.Context) (int64, error) {
	var count int64
	err := p.Db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}
