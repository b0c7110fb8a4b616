package handler

import (
	"github.com/ggasam0/shopmall/pkg/context"
	"github.com/ggasam0/shopmall/pkg/response"
	"github.com/ggasam0/shopmall/tenant"
	"github.com/ggasam0/shopmall/types"

	"github.com/gin-gonic/gin"
)

type Supplier struct {
	Suppliers []tenant.Supplier
}

func (s *Supplier) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/suppliers", context.Wrap(s.ListSuppliers))
	r.GET("/v1/tenant", context.Wrap(s.TenantContext))
}

func (s *Supplier) ListSuppliers(c *gin.Context) error {
	response.Success(c, s.Suppliers)
	return nil
}

// TenantContext 店面启动时获取当前地址对应的租户身份与带前缀路径
func (s *Supplier) TenantContext(c *gin.Context) error {
	supplier := context.GetSupplier(c)
	distributor := context.GetDistributor(c)

	response.Success(c, types.TenantContext{
		Supplier:    supplier,
		Distributor: distributor,
		HomePath:    tenant.BuildPath(supplier, "/"),
		CartPath:    tenant.BuildPath(supplier, "/cart"),
	})
	return nil
}
