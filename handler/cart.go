package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ggasam0/shopmall/cart"
	"github.com/ggasam0/shopmall/dao"
	"github.com/ggasam0/shopmall/pkg/context"
	"github.com/ggasam0/shopmall/pkg/response"
	"github.com/ggasam0/shopmall/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 会话 ID 通过这个头往返，首次请求服务端分配
const CartSessionHeader = "X-Cart-Session"

type Cart struct {
	Manager    *cart.Manager
	ProductDAO *dao.Product
}

func (h *Cart) RegisterRouter(r gin.IRouter) {
	group := r.Group("/v1/cart")
	group.GET("", context.Wrap(h.GetCart))
	group.POST("/items", context.Wrap(h.AddItem))
	group.PATCH("/items/:productId", context.Wrap(h.UpdateItem))
	group.DELETE("/items/:productId", context.Wrap(h.RemoveItem))
	group.DELETE("", context.Wrap(h.ClearCart))
	group.DELETE("/session", context.Wrap(h.DropSession))
}

func (h *Cart) session(c *gin.Context) (string, *cart.Store) {
	distributor := context.GetDistributor(c)
	sessionID, store := h.Manager.Session(c.GetHeader(CartSessionHeader), distributor.Code)
	c.Header(CartSessionHeader, sessionID)
	return sessionID, store
}

func view(sessionID string, store *cart.Store) types.CartView {
	return types.CartView{
		SessionID:       sessionID,
		DistributorCode: store.Code(),
		Items:           store.Items(),
		Total:           store.Total(),
	}
}

func (h *Cart) GetCart(c *gin.Context) error {
	sessionID, store := h.session(c)
	response.Success(c, view(sessionID, store))
	return nil
}

func (h *Cart) AddItem(c *gin.Context) error {
	var req types.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	product, err := h.ProductDAO.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusNotFound, "商品不存在")
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	sessionID, store := h.session(c)
	store.AddItem(c.Request.Context(), cart.Product{
		ID:       product.ID,
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price,
		ImageURL: product.ImageURL,
	}, req.Quantity)

	response.Success(c, view(sessionID, store))
	return nil
}

func (h *Cart) UpdateItem(c *gin.Context) error {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的商品 ID")
	}

	var req types.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	sessionID, store := h.session(c)
	store.UpdateQuantity(c.Request.Context(), productID, req.Quantity)
	response.Success(c, view(sessionID, store))
	return nil
}

func (h *Cart) RemoveItem(c *gin.Context) error {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的商品 ID")
	}

	sessionID, store := h.session(c)
	store.RemoveItem(productID)
	response.Success(c, view(sessionID, store))
	return nil
}

func (h *Cart) ClearCart(c *gin.Context) error {
	sessionID, store := h.session(c)
	store.Clear()
	response.Success(c, view(sessionID, store))
	return nil
}

// DropSession 登出时销毁购物车会话
func (h *Cart) DropSession(c *gin.Context) error {
	sessionID := c.GetHeader(CartSessionHeader)
	h.Manager.Drop(sessionID)
	response.Success(c, gin.H{"dropped": sessionID != ""})
	return nil
}
