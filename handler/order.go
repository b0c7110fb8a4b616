package handler

import (
	"net/http"
	"strconv"

	"github.com/ggasam0/shopmall/config"
	"github.com/ggasam0/shopmall/middleware"
	"github.com/ggasam0/shopmall/pkg/context"
	"github.com/ggasam0/shopmall/pkg/response"
	"github.com/ggasam0/shopmall/service"
	"github.com/ggasam0/shopmall/types"

	"github.com/gin-gonic/gin"
)

type Order struct {
	Config       *config.Config
	OrderService service.IOrderService
}

func (o *Order) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(o.Config.Jwt.Secret))

	orders := r.Group("/v1/orders")
	orders.GET("", authorize, context.Wrap(o.ListOrders))
	orders.POST("", context.Wrap(o.CreateOrder))
	orders.PATCH("/:id", authorize, context.Wrap(o.UpdateStatus))

	r.GET("/v1/users/:id/orders", authorize, context.Wrap(o.ListUserOrders))
}

func (o *Order) ListOrders(c *gin.Context) error {
	orders, err := o.OrderService.ListOrders(c.Request.Context())
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, orders)
	return nil
}

func (o *Order) ListUserOrders(c *gin.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的用户 ID")
	}

	orders, err := o.OrderService.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, orders)
	return nil
}

func (o *Order) CreateOrder(c *gin.Context) error {
	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	// 店面没传分销商时用租户中间件解析出的身份
	if req.DistributorCode == "" {
		req.DistributorCode = context.GetDistributor(c).Code
	}

	order, err := o.OrderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, order)
	return nil
}

func (o *Order) UpdateStatus(c *gin.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的订单 ID")
	}

	var req types.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	order, err := o.OrderService.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, order)
	return nil
}
