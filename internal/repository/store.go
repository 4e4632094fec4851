package repository

import (
	"context"

	"gorm.io/gorm"
)

// ReadyFunc is invoked before every store operation; it lets the caller
// finish deferred setup (such as migrations) once the store is reachable.
type ReadyFunc func(ctx context.Context) error

// GormStore implements Store on a relational database through gorm.
type GormStore struct {
	db    *gorm.DB
	ready ReadyFunc

	users        *GormUserRepository
	portfolio    *GormPortfolioRepository
	testimonials *GormTestimonialRepository
	contacts     *GormContactRepository
}

// NewGormStore builds the gorm repositories. ready may be nil.
func NewGormStore(db *gorm.DB, ready ReadyFunc) *GormStore {
	s := &GormStore{db: db, ready: ready}
	s.users = &GormUserRepository{store: s}
	s.portfolio = &GormPortfolioRepository{store: s}
	s.testimonials = &GormTestimonialRepository{store: s}
	s.contacts = &GormContactRepository{store: s}
	return s
}

func (s *GormStore) Users() UserRepository               { return s.users }
func (s *GormStore) Portfolio() PortfolioRepository      { return s.portfolio }
func (s *GormStore) Testimonials() TestimonialRepository { return s.testimonials }
func (s *GormStore) Contacts() ContactRepository         { return s.contacts }

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return classify(err)
	}
	return classify(sqlDB.PingContext(ctx))
}

// conn returns a context-bound session once the store is ready.
func (s *GormStore) conn(ctx context.Context) (*gorm.DB, error) {
	if s.ready != nil {
		if err := s.ready(ctx); err != nil {
			return nil, classify(err)
		}
	}
	return s.db.WithContext(ctx), nil
}
