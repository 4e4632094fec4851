package repository

import (
	"context"

	"github.com/eventforge/backend/internal/models"
	"gorm.io/gorm"
)

type GormTestimonialRepository struct {
	store *GormStore
}

func (r *GormTestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}
	testimonials := []models.Testimonial{}
	if err := db.Order("id ASC").Find(&testimonials).Error; err != nil {
		return nil, classify(err)
	}
	return testimonials, nil
}

func (r *GormTestimonialRepository) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}
	var testimonial models.Testimonial
	if err := db.First(&testimonial, id).Error; err != nil {
		return nil, classify(err)
	}
	return &testimonial, nil
}

func (r *GormTestimonialRepository) Create(ctx context.Context, testimonial *models.Testimonial) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}
	testimonial.ID = 0
	return classify(db.Create(testimonial).Error)
}

func (r *GormTestimonialRepository) Update(ctx context.Context, id uint, patch models.TestimonialPatch) (*models.Testimonial, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}
	var testimonial models.Testimonial
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&testimonial, id).Error; err != nil {
			return err
		}
		patch.Apply(&testimonial)
		return tx.Save(&testimonial).Error
	})
	if err != nil {
		return nil, classify(err)
	}
	return &testimonial, nil
}

func (r *GormTestimonialRepository) Delete(ctx context.Context, id uint) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}
	return classify(db.Delete(&models.Testimonial{}, id).Error)
}
