package service

import (
	"context"
	"strings"
	"testing"

	"github.com/ggasam0/shopmall/dao"
	"github.com/ggasam0/shopmall/models"
	"github.com/ggasam0/shopmall/stats"
	"github.com/ggasam0/shopmall/types"
)

func TestOrderService_CreateOrder(t *testing.T) {
	db := setupTestDB(t)
	userDAO := dao.NewUser(db)
	svc := &OrderService{OrderDAO: dao.NewOrder(db), UserDAO: userDAO}
	ctx := context.Background()

	user := &models.User{Name: "买家", Phone: "13700000001", Role: models.RoleCustomer}
	if err := userDAO.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	order, err := svc.CreateOrder(ctx, &types.CreateOrderRequest{
		Phone:           "13700000001",
		DistributorCode: "gz",
		Total:           123,
		Items:           []types.OrderItem{{ProductID: 1, Name: "加特林烟花", Price: 41, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.UserID != user.ID {
		t.Fatalf("user id = %d, want %d", order.UserID, user.ID)
	}
	if order.Status != stats.StatusPendingPickup {
		t.Fatalf("status = %q, want %q", order.Status, stats.StatusPendingPickup)
	}
	if !strings.HasPrefix(order.OrderNumber, "WD") {
		t.Fatalf("order number %q should start with WD", order.OrderNumber)
	}

	// 手机号优先于 user_id
	order2, err := svc.CreateOrder(ctx, &types.CreateOrderRequest{
		Phone:  "13700000001",
		UserID: 99999,
		Total:  5,
	})
	if err != nil {
		t.Fatalf("create order by phone: %v", err)
	}
	if order2.UserID != user.ID {
		t.Fatalf("phone should win over user_id, got user %d", order2.UserID)
	}

	if _, err := svc.CreateOrder(ctx, &types.CreateOrderRequest{Total: 1}); err == nil {
		t.Fatal("expected error when neither phone nor user_id given")
	}
	if _, err := svc.CreateOrder(ctx, &types.CreateOrderRequest{Phone: "000", Total: 1}); err == nil {
		t.Fatal("expected error for unknown phone")
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	userDAO := dao.NewUser(db)
	svc := &OrderService{OrderDAO: dao.NewOrder(db), UserDAO: userDAO}
	ctx := context.Background()

	user := &models.User{Name: "买家", Phone: "13700000002", Role: models.RoleCustomer}
	if err := userDAO.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	order, err := svc.CreateOrder(ctx, &types.CreateOrderRequest{UserID: user.ID, Total: 10})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, order.ID, stats.StatusCompleted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != stats.StatusCompleted {
		t.Fatalf("status = %q, want %q", updated.Status, stats.StatusCompleted)
	}

	// 闭集之外的状态拒收
	if _, err := svc.UpdateStatus(ctx, order.ID, "已退款"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if _, err := svc.UpdateStatus(ctx, 424242, stats.StatusCompleted); err == nil {
		t.Fatal("expected error for missing order")
	}
}
