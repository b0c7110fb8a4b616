package context

import (
	"errors"
	"net/http"

	"github.com/ggasam0/shopmall/pkg/response"
	"github.com/ggasam0/shopmall/tenant"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID      = "user_id"
	CtxRole        = "role"
	CtxSupplier    = "supplier"
	CtxDistributor = "distributor"
	CtxCartSession = "cart_session"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// GetSupplier 读取租户中间件写入的供应商，缺失时退回默认供应商
func GetSupplier(c *gin.Context) tenant.Supplier {
	v, ok := c.Get(CtxSupplier)
	if !ok {
		return tenant.DefaultSupplier
	}
	s, ok := v.(tenant.Supplier)
	if !ok {
		return tenant.DefaultSupplier
	}
	return s
}

// GetDistributor 读取租户中间件写入的分销商，缺失时退回默认分销商
func GetDistributor(c *gin.Context) tenant.Distributor {
	v, ok := c.Get(CtxDistributor)
	if !ok {
		return tenant.DefaultDistributor
	}
	d, ok := v.(tenant.Distributor)
	if !ok {
		return tenant.DefaultDistributor
	}
	return d
}
