package server

import (
	"github.com/ggasam0/shopmall/handler"
)

type Handlers struct {
	Auth      *handler.Auth
	Supplier  *handler.Supplier
	Product   *handler.Product
	Order     *handler.Order
	Inventory *handler.Inventory
	Dashboard *handler.Dashboard
	Cart      *handler.Cart
	User      *handler.User
}
