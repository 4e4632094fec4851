package repository

import (
	"context"

	"github.com/eventforge/backend/internal/models"
	"gorm.io/gorm"
)

type GormPortfolioRepository struct {
	store *GormStore
}

func (r *GormPortfolioRepository) List(ctx context.Context) ([]models.PortfolioItem, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}
	items := []models.PortfolioItem{}
	if err := db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, classify(err)
	}
	return items, nil
}

func (r *GormPortfolioRepository) GetByID(ctx context.Context, id uint) (*models.PortfolioItem, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}
	var item models.PortfolioItem
	if err := db.First(&item, id).Error; err != nil {
		return nil, classify(err)
	}
	return &item, nil
}

func (r *GormPortfolioRepository) Create(ctx context.Context, item *models.PortfolioItem) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}
	item.ID = 0
	if item.Role == nil {
		item.Role = []string{}
	}
	return classify(db.Create(item).Error)
}

// Update loads the row, applies the patch and writes the full row back
// inside one transaction.
func (r *GormPortfolioRepository) Update(ctx context.Context, id uint, patch models.PortfolioPatch) (*models.PortfolioItem, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}
	var item models.PortfolioItem
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}
		patch.Apply(&item)
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, classify(err)
	}
	return &item, nil
}

func (r *GormPortfolioRepository) Delete(ctx context.Context, id uint) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}
	return classify(db.Delete(&models.PortfolioItem{}, id).Error)
}
