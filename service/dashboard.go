package service

import (
	"context"
	"errors"
	"time"

	"github.com/ggasam0/shopmall/dao"
	"github.com/ggasam0/shopmall/models"
	"github.com/ggasam0/shopmall/stats"
	"github.com/ggasam0/shopmall/tenant"
	"github.com/ggasam0/shopmall/types"

	"gorm.io/gorm"
)

// 分销商佣金比例
const commissionRate = 0.15

type DashboardService struct {
	OrderDAO   *dao.Order
	UserDAO    *dao.User
	ProductDAO *dao.Product
	Suppliers  []tenant.Supplier
}

var _ IDashboardService = (*DashboardService)(nil)

type IDashboardService interface {
	AdminSummary(ctx context.Context, supplierCode string) (*types.AdminSummary, error)
	DistributorSummary(ctx context.Context, userID int64, mode stats.PeriodMode, period time.Time) (*types.DistributorSummary, error)
}

func toStatsOrders(orders []*models.Order) []stats.Order {
	out := make([]stats.Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, stats.Order{
			Status:          order.Status,
			Total:           order.Total,
			DistributorCode: order.DistributorCode,
			CreatedAt:       order.CreatedAt,
		})
	}
	return out
}

// distributorCodeOf 把供应商筛选参数换成其内嵌分销商的 code。
// "all"、空值或未知供应商都表示不过滤
func (s *DashboardService) distributorCodeOf(supplierCode string) string {
	if supplierCode == "" || supplierCode == "all" {
		return ""
	}
	for _, supplier := range s.Suppliers {
		if supplier.Code != supplierCode {
			continue
		}
		if supplier.Distributor != nil {
			return supplier.Distributor.Code
		}
		return ""
	}
	return ""
}

func (s *DashboardService) AdminSummary(ctx context.Context, supplierCode string) (*types.AdminSummary, error) {
	orders, err := s.OrderDAO.List(ctx)
	if err != nil {
		return nil, err
	}
	distributors, err := s.UserDAO.CountByRole(ctx, models.RoleDistributor)
	if err != nil {
		return nil, err
	}
	featured, err := s.ProductDAO.CountFeatured(ctx)
	if err != nil {
		return nil, err
	}

	summary := stats.Aggregate(toStatsOrders(orders), stats.Options{
		DistributorCode: s.distributorCodeOf(supplierCode),
	})

	result := &types.AdminSummary{
		ActiveDistributors: distributors,
		FeaturedProducts:   featured,
		StatusCounts:       summary.StatusCounts,
		DailySeries:        summary.DailySeries,
		MonthlySeries:      summary.MonthlySeries,
	}
	for _, order := range orders {
		result.TotalSales += order.Total
		if order.Status != stats.StatusCompleted {
			result.PendingOrders++
		}
	}
	return result, nil
}

func (s *DashboardService) DistributorSummary(ctx context.Context, userID int64, mode stats.PeriodMode, period time.Time) (*types.DistributorSummary, error) {
	user, err := s.UserDAO.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("分销商不存在")
		}
		return nil, err
	}
	if user.Role != models.RoleDistributor {
		return nil, errors.New("分销商不存在")
	}

	orders, err := s.OrderDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	code := ""
	if account, err := s.UserDAO.GetAccountByUserID(ctx, userID); err == nil {
		code = account.DistributorCode
		if code == "" {
			code = account.Username
		}
	}

	if mode == "" {
		mode = stats.ModeDay
	}
	if period.IsZero() {
		period = time.Now()
	}
	summary := stats.Aggregate(toStatsOrders(orders), stats.Options{
		Mode:   mode,
		Period: period,
	})

	result := &types.DistributorSummary{
		DistributorID:  user.ID,
		Code:           code,
		Name:           user.Name,
		PickupAddress:  user.PickupAddress,
		TotalOrders:    len(orders),
		CompletedCount: summary.CompletedCount,
		CompletedTotal: summary.CompletedAmount,
		PeriodCount:    summary.PeriodCount,
		PeriodAmount:   summary.PeriodAmount,
		DailySeries:    summary.DailySeries,
		MonthlySeries:  summary.MonthlySeries,
	}
	for _, order := range orders {
		result.Commission += order.Total * commissionRate
	}
	return result, nil
}
