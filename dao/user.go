package dao

import (
	"context"

	"github.com/ggasam0/shopmall/models"

	"gorm.io/gorm"
)

type User struct {
	Db *gorm.DB
}

func NewUser(db *gorm.DB) *User {
	return &User{Db: db}
}

func (u *User) Create(ctx context.Context, user *models.User) error {
	return u.Db.WithContext(ctx).Create(user).Error
}

func (u *User) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := u.Db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *User) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	if err := u.Db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *User) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := u.Db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (u *User) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := u.Db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (u *User) GetAccountByUsername(ctx context.Context, username string) (*models.AuthAccount, error) {
	var account models.AuthAccount
	if err := u.Db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (u *User) GetAccountByUserID(ctx context.Context, userID int64) (*models.AuthAccount, error) {
	var account models.AuthAccount
	if err := u.Db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (u *User) CreateAccount(ctx context.Context, account *models.AuthAccount) error {
	return u.Db.WithContext(ctx).Create(account).Error
}
