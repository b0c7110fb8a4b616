package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUser,
	NewProduct,
	NewOrder,
	NewInventory,
)
