package types

type CreateProductRequest struct {
	Name       string  `json:"name" binding:"required"`
	Category   string  `json:"category" binding:"required"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"image_url"`
	Tags       string  `json:"tags"`
	IsFeatured bool    `json:"is_featured"`
}

// BulkProductRow 批量导入的一行，来自后台上传的表格
type BulkProductRow struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
	Tags     string  `json:"tags"`
}

type BulkCreateProductsRequest struct {
	Products []BulkProductRow `json:"products" binding:"required"`
}

type BulkCreateProductsResponse struct {
	Saved   int `json:"saved"`
	Skipped int `json:"skipped"`
}
