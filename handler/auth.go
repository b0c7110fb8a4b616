package handler

import (
	"net/http"

	"github.com/ggasam0/shopmall/pkg/context"
	"github.com/ggasam0/shopmall/pkg/response"
	"github.com/ggasam0/shopmall/service"
	"github.com/ggasam0/shopmall/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/v1/auth")
	auth.POST("/login", context.Wrap(a.Login))
	auth.POST("/phone", context.Wrap(a.PhoneLogin))
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (a *Auth) PhoneLogin(c *gin.Context) error {
	var req types.PhoneLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := a.AuthService.PhoneLogin(c.Request.Context(), req.Phone)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, user)
	return nil
}
