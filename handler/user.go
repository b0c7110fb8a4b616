package handler

import (
	"net/http"

	"github.com/ggasam0/shopmall/config"
	"github.com/ggasam0/shopmall/middleware"
	"github.com/ggasam0/shopmall/models"
	"github.com/ggasam0/shopmall/pkg/context"
	"github.com/ggasam0/shopmall/pkg/response"
	"github.com/ggasam0/shopmall/service"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	admin := middleware.RequireRole(models.RoleAdmin)

	r.GET("/v1/users", authorize, admin, context.Wrap(u.ListUsers))
}

// ListUsers 后台用户列表，含分销商与手机号注册的客户
func (u *User) ListUsers(c *gin.Context) error {
	users, err := u.UserService.ListUsers(c.Request.Context())
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, users)
	return nil
}
