package types

// ReplaceInventoryRequest 整体替换某分销商的库存清单
type ReplaceInventoryRequest struct {
	Items []InventoryItem `json:"items" binding:"required"`
}

type InventoryItem struct {
	ProductID uint64 `json:"product_id"`
	Stock     int    `json:"stock"`
}

type InventoryView struct {
	DistributorCode string          `json:"distributor_code"`
	Items           []InventoryItem `json:"items"`
}
