package repository

import (
	"context"

	"github.com/eventforge/backend/internal/models"
)

// UserRepository persists admin accounts.
// Delete reports ErrNotFound when no row was removed.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

// PortfolioRepository persists portfolio items. Delete is idempotent.
type PortfolioRepository interface {
	List(ctx context.Context) ([]models.PortfolioItem, error)
	GetByID(ctx context.Context, id uint) (*models.PortfolioItem, error)
	Create(ctx context.Context, item *models.PortfolioItem) error
	Update(ctx context.Context, id uint, patch models.PortfolioPatch) (*models.PortfolioItem, error)
	Delete(ctx context.Context, id uint) error
}

// TestimonialRepository persists testimonials. Delete is idempotent.
type TestimonialRepository interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	GetByID(ctx context.Context, id uint) (*models.Testimonial, error)
	Create(ctx context.Context, testimonial *models.Testimonial) error
	Update(ctx context.Context, id uint, patch models.TestimonialPatch) (*models.Testimonial, error)
	Delete(ctx context.Context, id uint) error
}

// ContactRepository persists contact form submissions. Create assigns
// CreatedAt and Read=false regardless of what the caller set. Delete is idempotent.
type ContactRepository interface {
	List(ctx context.Context) ([]models.ContactSubmission, error)
	GetByID(ctx context.Context, id uint) (*models.ContactSubmission, error)
	Create(ctx context.Context, submission *models.ContactSubmission) error
	MarkRead(ctx context.Context, id uint) (*models.ContactSubmission, error)
	Delete(ctx context.Context, id uint) error
}

// Store bundles the repositories of one backing store.
type Store interface {
	Users() UserRepository
	Portfolio() PortfolioRepository
	Testimonials() TestimonialRepository
	Contacts() ContactRepository
	Ping(ctx context.Context) error
}
