package handler

import (
	"net/http"

	"github.com/ggasam0/shopmall/config"
	"github.com/ggasam0/shopmall/middleware"
	"github.com/ggasam0/shopmall/pkg/context"
	"github.com/ggasam0/shopmall/pkg/response"
	"github.com/ggasam0/shopmall/service"
	"github.com/ggasam0/shopmall/types"

	"github.com/gin-gonic/gin"
)

type Inventory struct {
	Config           *config.Config
	InventoryService service.IInventoryService
}

func (i *Inventory) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(i.Config.Jwt.Secret))

	inv := r.Group("/v1/inventory")
	inv.GET("/:code", context.Wrap(i.GetInventory))
	inv.PUT("/:code", authorize, context.Wrap(i.ReplaceInventory))
}

func (i *Inventory) GetInventory(c *gin.Context) error {
	view, err := i.InventoryService.GetInventory(c.Request.Context(), c.Param("code"))
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, view)
	return nil
}

func (i *Inventory) ReplaceInventory(c *gin.Context) error {
	var req types.ReplaceInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	err := i.InventoryService.ReplaceInventory(c.Request.Context(), c.Param("code"), req.Items)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"distributor_code": c.Param("code"), "saved": len(req.Items)})
	return nil
}
