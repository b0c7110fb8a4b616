package service

import (
	"context"
	"errors"

	"github.com/ggasam0/shopmall/dao"
	"github.com/ggasam0/shopmall/models"
	"github.com/ggasam0/shopmall/types"
)

type ProductService struct {
	ProductDAO *dao.Product
}

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	CreateProduct(ctx context.Context, req *types.CreateProductRequest) (*models.Product, error)
	BulkCreate(ctx context.Context, rows []types.BulkProductRow) (*types.BulkCreateProductsResponse, error)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.ProductDAO.List(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, req *types.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:       req.Name,
		Category:   req.Category,
		Price:      req.Price,
		ImageURL:   req.ImageURL,
		Tags:       req.Tags,
		IsFeatured: req.IsFeatured,
	}
	if err := s.ProductDAO.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// BulkCreate 批量导入。缺少名称或类别的行跳过，整批都无效时报错
func (s *ProductService) BulkCreate(ctx context.Context, rows []types.BulkProductRow) (*types.BulkCreateProductsResponse, error) {
	products := make([]*models.Product, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if row.Name == "" || row.Category == "" {
			skipped++
			continue
		}
		price := row.Price
		if price < 0 {
			price = 0
		}
		products = append(products, &models.Product{
			Name:     row.Name,
			Category: row.Category,
			Price:    price,
			ImageURL: row.ImageURL,
			Tags:     row.Tags,
		})
	}

	if len(products) == 0 {
		return nil, errors.New("未识别到商品名称与类别")
	}
	if err := s.ProductDAO.CreateBatch(ctx, products); err != nil {
		return nil, err
	}
	return &types.BulkCreateProductsResponse{
		Saved:   len(products),
		Skipped: skipped,
	}, nil
}
