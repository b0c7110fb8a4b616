package types

import "github.com/ggasam0/shopmall/cart"

type AddCartItemRequest struct {
	ProductID uint64 `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartView 购物车响应：条目、总价与会话 ID
type CartView struct {
	SessionID       string      `json:"session_id"`
	DistributorCode string      `json:"distributor_code"`
	Items           []cart.Item `json:"items"`
	Total           float64     `json:"total"`
}
