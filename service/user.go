package service

import (
	"context"

	"github.com/ggasam0/shopmall/dao"
	"github.com/ggasam0/shopmall/models"
)

type UserService struct {
	UserDAO *dao.User
}

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.UserDAO.List(ctx)
}
