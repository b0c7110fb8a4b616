package dao

import (
	"context"
	"testing"

	"github.com/ggasam0/shopmall/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.AuthAccount{},
		&models.Product{},
		&models.Order{},
		&models.InventoryRecord{},
	)
	if err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}
	return db
}

func TestInventory_ReplaceAndFetch(t *testing.T) {
	db := setupTestDB(t)
	inv := NewInventory(db)
	ctx := context.Background()

	err := inv.Replace(ctx, "gz", map[uint64]int{1: 10, 2: 0, 3: -4})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	stocks, err := inv.FetchInventory(ctx, "gz")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if stocks[1] != 10 || stocks[2] != 0 {
		t.Fatalf("unexpected stocks: %+v", stocks)
	}
	// 负数入库前归一化为 0
	if stocks[3] != 0 {
		t.Fatalf("negative stock should be stored as 0, got %d", stocks[3])
	}

	// 整体替换丢弃旧清单
	if err := inv.Replace(ctx, "gz", map[uint64]int{5: 7}); err != nil {
		t.Fatalf("replace again: %v", err)
	}
	stocks, err = inv.FetchInventory(ctx, "gz")
	if err != nil {
		t.Fatalf("fetch again: %v", err)
	}
	if len(stocks) != 1 || stocks[5] != 7 {
		t.Fatalf("replace should drop old rows, got %+v", stocks)
	}
}

func TestInventory_FetchUnknownDistributor(t *testing.T) {
	db := setupTestDB(t)
	inv := NewInventory(db)

	stocks, err := inv.FetchInventory(context.Background(), "nope")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(stocks) != 0 {
		t.Fatalf("expected empty map, got %+v", stocks)
	}
}

func TestOrder_CreateListUpdate(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrder(db)
	ctx := context.Background()

	order := &models.Order{
		OrderNumber:     "WD1001",
		UserID:          2,
		DistributorCode: "dist_a",
		Status:          "待提货",
		Total:           298,
	}
	if err := orders.Create(ctx, order); err != nil {
		t.Fatalf("create: %v", err)
	}

	byUser, err := orders.ListByUser(ctx, 2)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(byUser) != 1 || byUser[0].OrderNumber != "WD1001" {
		t.Fatalf("unexpected orders: %+v", byUser)
	}

	if err := orders.UpdateStatus(ctx, order.ID, "已完成"); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, err := orders.GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != "已完成" {
		t.Fatalf("expected 已完成, got %s", got.Status)
	}
}
