package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/NoobProgram-ai/OaksDonutShop/internal/models"
)

func (r *GormRepo) GetMenuItem(ctx context.Context, id int) (*models.MenuItem, error) {
	item := models.MenuItem{}
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateMenuItem inserts item; any caller-supplied ID is discarded and the
// storage-assigned identity written back.
func (r *GormRepo) CreateMenuItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	item.ID = 0
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMenuItem replaces every field of the row matching item.ID.
func (r *GormRepo) UpdateMenuItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	var existing models.MenuItem
	if err := r.DB.WithContext(ctx).First(&existing, item.ID).Error; err != nil {
		return nil, err
	}

	existing.Name = item.Name
	existing.Price = item.Price
	existing.Category = item.Category

	if err := r.DB.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *GormRepo) DeleteMenuItem(ctx context.Context, id int) error {
	res := r.DB.WithContext(ctx).Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
