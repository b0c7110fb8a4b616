package middleware

import (
	"net/url"

	"github.com/ggasam0/shopmall/pkg/context"
	"github.com/ggasam0/shopmall/tenant"

	"github.com/gin-gonic/gin"
)

// 店面把浏览器地址放在这个头里，缺省时退回请求自身的 URL
const LocationHeader = "X-Mall-Location"

// Tenant 解析请求归属的供应商与分销商并写入请求上下文。
// 解析永不失败，匹配不到时落到默认身份
func Tenant(suppliers []tenant.Supplier, dir *tenant.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		location := c.Request.URL
		if raw := c.GetHeader(LocationHeader); raw != "" {
			if parsed, err := url.Parse(raw); err == nil {
				location = parsed
			}
		}

		supplier := tenant.ResolveSupplier(location, suppliers)
		distributor := tenant.DistributorFor(supplier, location, dir)

		c.Set(context.CtxSupplier, supplier)
		c.Set(context.CtxDistributor, distributor)

		c.Next()
	}
}
