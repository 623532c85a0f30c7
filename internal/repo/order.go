package repo

import (
	"context"

	"github.com/NoobProgram-ai/OaksDonutShop/internal/models"
)

// CreateOrder inserts order and its lines in one create. PlacedAt and
// ItemSummary are stored exactly as supplied; the repository never
// recomputes them.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.ID = 0
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, limit, offset int) (int64, []models.Order, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var orders []models.Order
	if err := r.DB.WithContext(ctx).
		Preload("Lines").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error; err != nil {
		return 0, nil, err
	}

	return total, orders, nil
}
