package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(DashboardService), "*"),
	wire.Bind(new(IDashboardService), new(*DashboardService)),

	wire.Struct(new(InventoryService), "*"),
	wire.Bind(new(IInventoryService), new(*InventoryService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)
