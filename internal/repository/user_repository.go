package repository

import (
	"context"

	"github.com/eventforge/backend/internal/models"
)

type GormUserRepository struct {
	store *GormStore
}

func (r *GormUserRepository) List(ctx context.Context) ([]models.User, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, classify(err)
	}
	return users, nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// Create inserts the user; a taken username yields ErrConflict.
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}
	user.ID = 0
	return classify(db.Create(user).Error)
}

func (r *GormUserRepository) Delete(ctx context.Context, id uint) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}
	result := db.Delete(&models.User{}, id)
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
