package service

import (
	"context"

	"github.com/NoobProgram-ai/OaksDonutShop/internal/models"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/repo"
)

type OrderService struct {
	Repo *repo.GormRepo
}

func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) (int64, []models.Order, error) {
	return s.Repo.ListOrders(ctx, limit, offset)
}
