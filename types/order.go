package types

type OrderItem struct {
	ProductID uint64  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID          int64       `json:"user_id"`
	Phone           string      `json:"phone"`
	DistributorCode string      `json:"distributor_code"`
	Total           float64     `json:"total"`
	Items           []OrderItem `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
