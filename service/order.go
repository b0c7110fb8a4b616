package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ggasam0/shopmall/dao"
	"github.com/ggasam0/shopmall/models"
	"github.com/ggasam0/shopmall/pkg/snowflake"
	"github.com/ggasam0/shopmall/stats"
	"github.com/ggasam0/shopmall/types"

	"gorm.io/gorm"
)

type OrderService struct {
	OrderDAO *dao.Order
	UserDAO  *dao.User
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	ListOrders(ctx context.Context) ([]*models.Order, error)
	ListUserOrders(ctx context.Context, userID int64) ([]*models.Order, error)
	CreateOrder(ctx context.Context, req *types.CreateOrderRequest) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) (*models.Order, error)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	return s.OrderDAO.List(ctx)
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID int64) ([]*models.Order, error) {
	return s.OrderDAO.ListByUser(ctx, userID)
}

// CreateOrder 下单。优先按手机号定位用户，其次按 user_id；
// 新订单一律从"待提货"状态开始
func (s *OrderService) CreateOrder(ctx context.Context, req *types.CreateOrderRequest) (*models.Order, error) {
	var (
		user *models.User
		err  error
	)
	switch {
	case req.Phone != "":
		user, err = s.UserDAO.GetByPhone(ctx, req.Phone)
	case req.UserID > 0:
		user, err = s.UserDAO.GetByID(ctx, req.UserID)
	default:
		return nil, errors.New("缺少下单用户")
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("用户不存在")
		}
		return nil, err
	}

	items, err := json.Marshal(req.Items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNumber:     snowflake.GenOrderNumber(),
		UserID:          user.ID,
		DistributorCode: req.DistributorCode,
		Status:          stats.StatusPendingPickup,
		Total:           req.Total,
		Items:           items,
	}
	if err := s.OrderDAO.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus 只接受状态闭集内的值
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status string) (*models.Order, error) {
	valid := false
	for _, known := range stats.Statuses {
		if status == known {
			valid = true
			break
		}
	}
	if !valid {
		return nil, errors.New("无效的订单状态: " + status)
	}

	if _, err := s.OrderDAO.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("订单不存在")
		}
		return nil, err
	}
	if err := s.OrderDAO.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return s.OrderDAO.GetByID(ctx, orderID)
}
