package repository

import (
	"context"
	"time"

	"github.com/eventforge/backend/internal/models"
	"gorm.io/gorm"
)

type GormContactRepository struct {
	store *GormStore
}

func (r *GormContactRepository) List(ctx context.Context) ([]models.ContactSubmission, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}
	submissions := []models.ContactSubmission{}
	if err := db.Order("id ASC").Find(&submissions).Error; err != nil {
		return nil, classify(err)
	}
	return submissions, nil
}

func (r *GormContactRepository) GetByID(ctx context.Context, id uint) (*models.ContactSubmission, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}
	var submission models.ContactSubmission
	if err := db.First(&submission, id).Error; err != nil {
		return nil, classify(err)
	}
	return &submission, nil
}

func (r *GormContactRepository) Create(ctx context.Context, submission *models.ContactSubmission) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}
	submission.ID = 0
	submission.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	submission.Read = false
	return classify(db.Create(submission).Error)
}

// MarkRead sets read=true. Marking an already read submission succeeds.
func (r *GormContactRepository) MarkRead(ctx context.Context, id uint) (*models.ContactSubmission, error) {
	db, err := r.store.conn(ctx)
	if err != nil {
		return nil, err
	}
	var submission models.ContactSubmission
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&submission, id).Error; err != nil {
			return err
		}
		if submission.Read {
			return nil
		}
		if err := tx.Model(&submission).Update("read", true).Error; err != nil {
			return err
		}
		submission.Read = true
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return &submission, nil
}

func (r *GormContactRepository) Delete(ctx context.Context, id uint) error {
	db, err := r.store.conn(ctx)
	if err != nil {
		return err
	}
	return classify(db.Delete(&models.ContactSubmission{}, id).Error)
}
