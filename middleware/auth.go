package middleware

import (
	"net/http"
	"strings"

	"github.com/ggasam0/shopmall/pkg/context"
	"github.com/ggasam0/shopmall/pkg/jwt"
	"github.com/ggasam0/shopmall/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxRole, claims.Role)

		c.Next()
	}
}

// RequireRole 在 Auth 之后使用，校验登录角色
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(context.CtxRole) != role {
			response.Abort(c, http.StatusForbidden, "无权访问")
			return
		}
		c.Next()
	}
}
