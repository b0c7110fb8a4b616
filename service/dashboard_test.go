package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/ggasam0/shopmall/dao"
	"github.com/ggasam0/shopmall/models"
	"github.com/ggasam0/shopmall/stats"
	"github.com/ggasam0/shopmall/tenant"
)

func TestDashboardService_AdminSummary(t *testing.T) {
	db := setupTestDB(t)
	userDAO := dao.NewUser(db)
	orderDAO := dao.NewOrder(db)
	productDAO := dao.NewProduct(db)
	ctx := context.Background()

	seedAccount(t, userDAO, "luowen", "pw", models.RoleDistributor, "gz")
	if err := productDAO.Create(ctx, &models.Product{Name: "水母烟花", Category: "组合类", Price: 88, IsFeatured: true}); err != nil {
		t.Fatalf("create product: %v", err)
	}

	buyer := &models.User{Name: "买家", Phone: "13700000003", Role: models.RoleCustomer}
	if err := userDAO.Create(ctx, buyer); err != nil {
		t.Fatalf("create buyer: %v", err)
	}
	orders := []*models.Order{
		{OrderNumber: "WD1", UserID: buyer.ID, Status: stats.StatusCompleted, Total: 100},
		{OrderNumber: "WD2", UserID: buyer.ID, Status: stats.StatusPendingPickup, Total: 50},
		{OrderNumber: "WD3", UserID: buyer.ID, Status: stats.StatusPendingPayment, Total: 30},
	}
	for _, order := range orders {
		if err := orderDAO.Create(ctx, order); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	svc := &DashboardService{OrderDAO: orderDAO, UserDAO: userDAO, ProductDAO: productDAO}
	summary, err := svc.AdminSummary(ctx, "all")
	if err != nil {
		t.Fatalf("admin summary: %v", err)
	}

	if summary.TotalSales != 180 {
		t.Fatalf("total sales = %v, want 180", summary.TotalSales)
	}
	if summary.PendingOrders != 2 {
		t.Fatalf("pending orders = %d, want 2", summary.PendingOrders)
	}
	if summary.ActiveDistributors != 1 {
		t.Fatalf("active distributors = %d, want 1", summary.ActiveDistributors)
	}
	if summary.FeaturedProducts != 1 {
		t.Fatalf("featured products = %d, want 1", summary.FeaturedProducts)
	}
	if summary.StatusCounts[stats.StatusCompleted] != 1 {
		t.Fatalf("completed count = %d, want 1", summary.StatusCounts[stats.StatusCompleted])
	}
	if len(summary.DailySeries) != 7 || len(summary.MonthlySeries) != 7 {
		t.Fatalf("series should have 7 points, got %d/%d",
			len(summary.DailySeries), len(summary.MonthlySeries))
	}
}

func TestDashboardService_AdminSummarySupplierFilter(t *testing.T) {
	db := setupTestDB(t)
	userDAO := dao.NewUser(db)
	orderDAO := dao.NewOrder(db)
	ctx := context.Background()

	buyer := &models.User{Name: "买家", Phone: "13700000004", Role: models.RoleCustomer}
	if err := userDAO.Create(ctx, buyer); err != nil {
		t.Fatalf("create buyer: %v", err)
	}
	if err := orderDAO.Create(ctx, &models.Order{
		OrderNumber: "WD10", UserID: buyer.ID,
		DistributorCode: "dist_a", Status: stats.StatusCompleted, Total: 70,
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := orderDAO.Create(ctx, &models.Order{
		OrderNumber: "WD11", UserID: buyer.ID,
		DistributorCode: "gz", Status: stats.StatusCompleted, Total: 30,
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	svc := &DashboardService{
		OrderDAO: orderDAO, UserDAO: userDAO, ProductDAO: dao.NewProduct(db),
		Suppliers: []tenant.Supplier{
			{Code: "shopa", Distributor: &tenant.Distributor{Code: "dist_a"}},
			{Code: "shopb"},
		},
	}

	// 供应商筛选换算成内嵌分销商 code
	summary, err := svc.AdminSummary(ctx, "shopa")
	if err != nil {
		t.Fatalf("admin summary: %v", err)
	}
	if summary.StatusCounts[stats.StatusCompleted] != 1 {
		t.Fatalf("filtered completed = %d, want 1", summary.StatusCounts[stats.StatusCompleted])
	}

	// 无内嵌分销商的供应商退化为不过滤
	summary, err = svc.AdminSummary(ctx, "shopb")
	if err != nil {
		t.Fatalf("admin summary: %v", err)
	}
	if summary.StatusCounts[stats.StatusCompleted] != 2 {
		t.Fatalf("unfiltered completed = %d, want 2", summary.StatusCounts[stats.StatusCompleted])
	}
}

func TestDashboardService_DistributorSummary(t *testing.T) {
	db := setupTestDB(t)
	userDAO := dao.NewUser(db)
	orderDAO := dao.NewOrder(db)
	ctx := context.Background()

	distributor := seedAccount(t, userDAO, "luowen", "pw", models.RoleDistributor, "gz")
	for _, order := range []*models.Order{
		{OrderNumber: "WD20", UserID: distributor.ID, Status: stats.StatusCompleted, Total: 200},
		{OrderNumber: "WD21", UserID: distributor.ID, Status: stats.StatusPendingPickup, Total: 100},
	} {
		if err := orderDAO.Create(ctx, order); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	svc := &DashboardService{OrderDAO: orderDAO, UserDAO: userDAO, ProductDAO: dao.NewProduct(db)}
	summary, err := svc.DistributorSummary(ctx, distributor.ID, stats.ModeDay, time.Now())
	if err != nil {
		t.Fatalf("distributor summary: %v", err)
	}

	if summary.Code != "gz" {
		t.Fatalf("code = %q, want gz", summary.Code)
	}
	if summary.TotalOrders != 2 {
		t.Fatalf("total orders = %d, want 2", summary.TotalOrders)
	}
	if summary.CompletedCount != 1 || summary.CompletedTotal != 200 {
		t.Fatalf("completed = %d/%v, want 1/200", summary.CompletedCount, summary.CompletedTotal)
	}
	// 佣金按全部订单总额的 15% 计
	if math.Abs(summary.Commission-45) > 1e-9 {
		t.Fatalf("commission = %v, want 45", summary.Commission)
	}

	// 普通客户不是分销商
	buyer := &models.User{Name: "买家", Phone: "13700000005", Role: models.RoleCustomer}
	if err := userDAO.Create(ctx, buyer); err != nil {
		t.Fatalf("create buyer: %v", err)
	}
	if _, err := svc.DistributorSummary(ctx, buyer.ID, stats.ModeDay, time.Now()); err == nil {
		t.Fatal("expected error for non-distributor user")
	}
}
