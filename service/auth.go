package service

import (
	"context"
	"errors"
	"time"

	"github.com/ggasam0/shopmall/config"
	"github.com/ggasam0/shopmall/dao"
	"github.com/ggasam0/shopmall/models"
	"github.com/ggasam0/shopmall/pkg/jwt"
	"github.com/ggasam0/shopmall/types"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Config  *config.Config
	UserDAO *dao.User
}

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
	PhoneLogin(ctx context.Context, phone string) (*models.User, error)
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	account, err := s.UserDAO.GetAccountByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.New("用户名或密码错误")
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return nil, errors.New("用户名或密码错误")
	}

	user, err := s.UserDAO.GetByID(ctx, account.UserID)
	if err != nil {
		return nil, errors.New("账号未关联用户")
	}

	expire := time.Duration(s.Config.Jwt.Expire) * time.Second
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, account.Role, expire)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{
		Role:   account.Role,
		UserID: user.ID,
		Name:   user.Name,
		Token:  token,
	}, nil
}

// PhoneLogin 手机号登录，不存在的号码自动注册为普通客户
func (s *AuthService) PhoneLogin(ctx context.Context, phone string) (*models.User, error) {
	user, err := s.UserDAO.GetByPhone(ctx, phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &models.User{
		Name:  "手机用户",
		Phone: phone,
		Role:  models.RoleCustomer,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
