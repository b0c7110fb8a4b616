//go:build wireinject
// +build wireinject

package main

import (
	"github.com/ggasam0/shopmall/bootstrap"
	"github.com/ggasam0/shopmall/cart"
	"github.com/ggasam0/shopmall/config"
	"github.com/ggasam0/shopmall/dao"
	"github.com/ggasam0/shopmall/dao/cache"
	"github.com/ggasam0/shopmall/handler"
	"github.com/ggasam0/shopmall/inventory"
	"github.com/ggasam0/shopmall/pkg/client"
	"github.com/ggasam0/shopmall/pkg/database"
	"github.com/ggasam0/shopmall/pkg/server"
	"github.com/ggasam0/shopmall/service"
	"github.com/ggasam0/shopmall/tenant"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		database.NewDB,
		client.NewRedisClient,

		tenant.NewSuppliers,
		tenant.NewDistributorDirectory,

		cache.NewInventoryCache,
		wire.Bind(new(inventory.DurableCache), new(*cache.InventoryCache)),
		wire.Bind(new(inventory.Source), new(*dao.Inventory)),
		inventory.NewStrategy,
		cart.NewManager,

		dao.ProviderSet,
		service.ProviderSet,
		bootstrap.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Supplier), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Inventory), "*"),
		wire.Struct(new(handler.Dashboard), "*"),
		wire.Struct(new(handler.Cart), "*"),
		wire.Struct(new(handler.User), "*"),

		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
