package types

import "github.com/ggasam0/shopmall/tenant"

// TenantContext 店面启动时请求的租户上下文
type TenantContext struct {
	Supplier    tenant.Supplier    `json:"supplier"`
	Distributor tenant.Distributor `json:"distributor"`
	HomePath    string             `json:"home_path"`
	CartPath    string             `json:"cart_path"`
}
