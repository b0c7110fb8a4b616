package handler

import (
	"net/http"

	"github.com/ggasam0/shopmall/config"
	"github.com/ggasam0/shopmall/middleware"
	"github.com/ggasam0/shopmall/models"
	"github.com/ggasam0/shopmall/pkg/context"
	"github.com/ggasam0/shopmall/pkg/response"
	"github.com/ggasam0/shopmall/service"
	"github.com/ggasam0/shopmall/types"

	"github.com/gin-gonic/gin"
)

type Product struct {
	Config         *config.Config
	ProductService service.IProductService
}

func (p *Product) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	admin := middleware.RequireRole(models.RoleAdmin)

	products := r.Group("/v1/products")
	products.GET("", context.Wrap(p.ListProducts))
	products.POST("", authorize, admin, context.Wrap(p.CreateProduct))
	products.POST("/bulk", authorize, admin, context.Wrap(p.BulkCreate))
}

func (p *Product) ListProducts(c *gin.Context) error {
	products, err := p.ProductService.ListProducts(c.Request.Context())
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, products)
	return nil
}

func (p *Product) CreateProduct(c *gin.Context) error {
	var req types.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	product, err := p.ProductService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, product)
	return nil
}

func (p *Product) BulkCreate(c *gin.Context) error {
	var req types.BulkCreateProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := p.ProductService.BulkCreate(c.Request.Context(), req.Products)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, resp)
	return nil
}
