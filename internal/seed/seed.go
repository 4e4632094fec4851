package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventforge/backend/internal/models"
	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/internal/utils"
	"github.com/eventforge/backend/pkg/logger"
	"go.uber.org/zap"
)

// Content inserts the sample portfolio and testimonials into empty tables.
// Tables that already hold rows are left alone.
func Content(ctx context.Context, store repository.Store) error {
	items, err := store.Portfolio().List(ctx)
	if err != nil {
		return fmt.Errorf("listing portfolio: %w", err)
	}
	if len(items) == 0 {
		for _, sample := range SamplePortfolio() {
			item := sample
			if err := store.Portfolio().Create(ctx, &item); err != nil {
				return fmt.Errorf("creating portfolio item %q: %w", sample.Title, err)
			}
		}
		logger.Log.Info("Seeded sample portfolio", zap.Int("count", len(SamplePortfolio())))
	}

	testimonials, err := store.Testimonials().List(ctx)
	if err != nil {
		return fmt.Errorf("listing testimonials: %w", err)
	}
	if len(testimonials) == 0 {
		for _, sample := range SampleTestimonials() {
			t := sample
			if err := store.Testimonials().Create(ctx, &t); err != nil {
				return fmt.Errorf("creating testimonial by %q: %w", sample.Author, err)
			}
		}
		logger.Log.Info("Seeded sample testimonials", zap.Int("count", len(SampleTestimonials())))
	}

	return nil
}

// Admin creates the admin account unless the username is already taken.
// created is false when the account already existed.
func Admin(ctx context.Context, users repository.UserRepository, username, password string) (user *models.User, created bool, err error) {
	existing, err := users.GetByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, false, fmt.Errorf("hashing password: %w", err)
	}

	user = &models.User{Username: username, Password: hash}
	if err := users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
