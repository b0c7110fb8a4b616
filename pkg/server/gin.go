package server

import (
	"net/http"

	"github.com/ggasam0/shopmall/middleware"
	"github.com/ggasam0/shopmall/pkg/response"
	"github.com/ggasam0/shopmall/tenant"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewGinEngine(h *Handlers, suppliers []tenant.Supplier, dir *tenant.Directory) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.Use(middleware.GinZap(), gin.Recovery())
	r.Use(response.ErrorMiddleware())
	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.Tenant(suppliers, dir))
	h.Auth.RegisterRouter(api)
	h.Supplier.RegisterRouter(api)
	h.Product.RegisterRouter(api)
	h.Order.RegisterRouter(api)
	h.Inventory.RegisterRouter(api)
	h.Dashboard.RegisterRouter(api)
	h.Cart.RegisterRouter(api)
	h.User.RegisterRouter(api)
	return r
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Content-Length, X-Requested-With, X-Mall-Location, X-Cart-Session")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Cart-Session")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
