package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ggasam0/shopmall/config"
	"github.com/ggasam0/shopmall/middleware"
	"github.com/ggasam0/shopmall/models"
	"github.com/ggasam0/shopmall/pkg/context"
	"github.com/ggasam0/shopmall/pkg/response"
	"github.com/ggasam0/shopmall/service"
	"github.com/ggasam0/shopmall/stats"

	"github.com/gin-gonic/gin"
)

type Dashboard struct {
	Config           *config.Config
	DashboardService service.IDashboardService
}

func (d *Dashboard) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(d.Config.Jwt.Secret))

	r.GET("/v1/admin/summary", authorize, middleware.RequireRole(models.RoleAdmin),
		context.Wrap(d.AdminSummary))
	r.GET("/v1/distributor/:id/summary", authorize, context.Wrap(d.DistributorSummary))
}

// AdminSummary 支持 ?supplier=<code> 过滤，缺省或 all 为全量
func (d *Dashboard) AdminSummary(c *gin.Context) error {
	summary, err := d.DashboardService.AdminSummary(c.Request.Context(), c.Query("supplier"))
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, summary)
	return nil
}

// DistributorSummary 支持 ?mode=day|month&period=2006-01-02 选报表期
func (d *Dashboard) DistributorSummary(c *gin.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的分销商 ID")
	}

	mode := stats.PeriodMode(c.DefaultQuery("mode", string(stats.ModeDay)))
	if mode != stats.ModeDay && mode != stats.ModeMonth {
		return response.NewError(http.StatusBadRequest, "mode 只支持 day 或 month")
	}

	period := time.Now()
	if raw := c.Query("period"); raw != "" {
		layout := "2006-01-02"
		if mode == stats.ModeMonth {
			layout = "2006-01"
		}
		period, err = time.ParseInLocation(layout, raw, time.Local)
		if err != nil {
			return response.NewError(http.StatusBadRequest, "无效的报表期: "+raw)
		}
	}

	summary, err := d.DashboardService.DistributorSummary(c.Request.Context(), userID, mode, period)
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}
	response.Success(c, summary)
	return nil
}
