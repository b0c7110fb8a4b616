package models

import "time"

const (
	RoleAdmin       = "admin"
	RoleDistributor = "distributor"
	RoleCustomer    = "customer"
)

// User 用户表，分销商也是一种用户
type User struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Phone         string    `gorm:"column:phone;type:varchar(20);not null;uniqueIndex:idx_phone" json:"phone"`
	Role          string    `gorm:"column:role;type:varchar(20);not null;default:'customer'" json:"role"`
	PickupAddress string    `gorm:"column:pickup_address;type:varchar(255)" json:"pickup_address"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// AuthAccount 后台登录账号，密码存 bcrypt 散列
type AuthAccount struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username        string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:idx_auth_accounts_username" json:"username"`
	PasswordHash    string    `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	Role            string    `gorm:"column:role;type:varchar(20);not null" json:"role"`
	UserID          int64     `gorm:"column:user_id;not null;index:idx_auth_accounts_user_id" json:"user_id"`
	DistributorCode string    `gorm:"column:distributor_code;type:varchar(32);index:idx_auth_accounts_distributor_code" json:"distributor_code"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AuthAccount) TableName() string {
	return "auth_accounts"
}
