package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/NoobProgram-ai/OaksDonutShop/internal/models"
	"github.com/NoobProgram-ai/OaksDonutShop/internal/repo"
)

type MenuService struct {
	Repo *repo.GormRepo
}

func (s *MenuService) GetMenuItem(ctx context.Context, id int) (*models.MenuItem, error) {
	item, err := s.Repo.GetMenuItem(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
	}
	return item, err
}

func (s *MenuService) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return s.Repo.GetMenuItems(ctx)
}

func (s *MenuService) CreateMenuItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	return s.Repo.CreateMenuItem(ctx, item)
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	updated, err := s.Repo.UpdateMenuItem(ctx, item)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("menu item %d: %w", item.ID, ErrNotFound)
	}
	return updated, err
}

func (s *MenuService) DeleteMenuItem(ctx context.Context, id int) error {
	err := s.Repo.DeleteMenuItem(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("menu item %d: %w", id, ErrNotFound)
	}
	return err
}

func validateMenuItem(item *models.MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	if item.Price < 0 {
		return fmt.Errorf("price must be >= 0: %w", ErrValidation)
	}
	return nil
}
