package bootstrap

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ggasam0/shopmall/config"
	"github.com/ggasam0/shopmall/dao"
	"github.com/ggasam0/shopmall/inventory"
	"github.com/ggasam0/shopmall/models"
	"github.com/ggasam0/shopmall/pkg/log"
	"github.com/ggasam0/shopmall/pkg/snowflake"
	"github.com/ggasam0/shopmall/stats"
	"github.com/ggasam0/shopmall/tenant"
	"github.com/ggasam0/shopmall/types"

	"github.com/google/wire"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(Bootstrap), "*"),
)

// Bootstrap 启动引导：建表、写入种子数据、预热库存
type Bootstrap struct {
	Conf     *config.Config
	Db       *gorm.DB
	UserDao  *dao.User
	Product  *dao.Product
	OrderDao *dao.Order
	Dir      *tenant.Directory
	Strategy inventory.Strategy
}

func (b *Bootstrap) Run(ctx context.Context) error {
	if err := b.migrate(); err != nil {
		return err
	}
	if err := b.seedAccounts(ctx); err != nil {
		return err
	}
	if err := b.seedProducts(ctx); err != nil {
		return err
	}
	if err := b.seedOrder(ctx); err != nil {
		return err
	}

	b.warmInventory(ctx)

	return nil
}

func (b *Bootstrap) migrate() error {
	return b.Db.AutoMigrate(
		&models.User{},
		&models.AuthAccount{},
		&models.Product{},
		&models.Order{},
		&models.InventoryRecord{},
	)
}

// seedAccounts 按配置写入种子账号，已存在的用户名跳过
func (b *Bootstrap) seedAccounts(ctx context.Context) error {
	if b.Conf.Mall == nil {
		return nil
	}

	for _, account := range b.Conf.Mall.Accounts {
		_, err := b.UserDao.GetAccountByUsername(ctx, account.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &models.User{
			Name:          account.Name,
			Phone:         account.Phone,
			Role:          account.Role,
			PickupAddress: account.PickupAddress,
		}
		if err := b.UserDao.Create(ctx, user); err != nil {
			return err
		}

		if err := b.UserDao.CreateAccount(ctx, &models.AuthAccount{
			Username:        account.Username,
			PasswordHash:    string(hash),
			Role:            account.Role,
			UserID:          user.ID,
			DistributorCode: account.Distributor,
		}); err != nil {
			return err
		}

		log.L.Info("seeded account",
			zap.String("username", account.Username),
			zap.String("role", account.Role),
		)
	}

	return nil
}

// seedProducts 商品表为空时写入演示商品
func (b *Bootstrap) seedProducts(ctx context.Context) error {
	count, err := b.Product.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []*models.Product{
		{Name: "加特林烟花", Category: "手持类", Price: 35, Tags: "热卖", IsFeatured: true},
		{Name: "仙女棒", Category: "手持类", Price: 5, Tags: "儿童"},
		{Name: "水母烟花", Category: "组合类", Price: 88, IsFeatured: true},
		{Name: "满天星", Category: "组合类", Price: 128, Tags: "年货", IsFeatured: true},
		{Name: "冲天炮", Category: "升空类", Price: 20},
		{Name: "大地红", Category: "鞭炮类", Price: 45, Tags: "传统"},
	}
	if err := b.Product.CreateBatch(ctx, products); err != nil {
		return err
	}

	log.L.Info("seeded products", zap.Int("count", len(products)))

	return nil
}

// seedOrder 订单表为空时挂一笔演示订单到第一个分销商账号名下
func (b *Bootstrap) seedOrder(ctx context.Context) error {
	count, err := b.OrderDao.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var owner *models.AuthAccount
	if b.Conf.Mall != nil {
		for _, account := range b.Conf.Mall.Accounts {
			if account.Distributor == "" {
				continue
			}
			found, err := b.UserDao.GetAccountByUsername(ctx, account.Username)
			if err != nil {
				continue
			}
			owner = found
			break
		}
	}
	if owner == nil {
		return nil
	}

	items, err := json.Marshal([]types.OrderItem{
		{ProductID: 1, Name: "加特林烟花", Price: 35, Quantity: 2},
	})
	if err != nil {
		return err
	}

	order := &models.Order{
		OrderNumber:     snowflake.GenOrderNumber(),
		UserID:          owner.UserID,
		DistributorCode: owner.DistributorCode,
		Status:          stats.StatusPendingPickup,
		Total:           70,
		Items:           items,
	}
	if err := b.OrderDao.Create(ctx, order); err != nil {
		return err
	}

	log.L.Info("seeded order", zap.String("order_number", order.OrderNumber))

	return nil
}

// warmInventory 并发预热所有分销商的库存缓存。
// 预热失败不阻塞启动，策略内部自行降级
func (b *Bootstrap) warmInventory(ctx context.Context) {
	codes := b.Dir.Codes()
	if len(codes) == 0 {
		return
	}

	var wg conc.WaitGroup
	for _, code := range codes {
		code := code
		wg.Go(func() {
			b.Strategy.Preload(ctx, code)
		})
	}
	wg.Wait()

	log.L.Info("inventory warmed", zap.Int("distributors", len(codes)))
}
