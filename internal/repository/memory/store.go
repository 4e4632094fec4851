// Package memory implements the repository interfaces on process memory.
// It backs local development and tests; data does not survive a restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eventforge/backend/internal/models"
	"github.com/eventforge/backend/internal/repository"
)

type Store struct {
	mu sync.RWMutex

	users        map[uint]models.User
	portfolio    map[uint]models.PortfolioItem
	testimonials map[uint]models.Testimonial
	contacts     map[uint]models.ContactSubmission

	nextUserID        uint
	nextPortfolioID   uint
	nextTestimonialID uint
	nextContactID     uint

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:             make(map[uint]models.User),
		portfolio:         make(map[uint]models.PortfolioItem),
		testimonials:      make(map[uint]models.Testimonial),
		contacts:          make(map[uint]models.ContactSubmission),
		nextUserID:        1,
		nextPortfolioID:   1,
		nextTestimonialID: 1,
		nextContactID:     1,
		now:               time.Now,
	}
}

func (s *Store) Users() repository.UserRepository               { return userRepo{s} }
func (s *Store) Portfolio() repository.PortfolioRepository      { return portfolioRepo{s} }
func (s *Store) Testimonials() repository.TestimonialRepository { return testimonialRepo{s} }
func (s *Store) Contacts() repository.ContactRepository         { return contactRepo{s} }

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func sortedKeys[T any](m map[uint]T) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func clonePortfolio(item models.PortfolioItem) models.PortfolioItem {
	if item.Venue != nil {
		v := *item.Venue
		item.Venue = &v
	}
	item.Role = append([]string{}, item.Role...)
	item.Tags = append([]string{}, item.Tags...)
	return item
}

func cloneContact(c models.ContactSubmission) models.ContactSubmission {
	if c.Phone != nil {
		v := *c.Phone
		c.Phone = &v
	}
	if c.EventType != nil {
		v := *c.EventType
		c.EventType = &v
	}
	return c
}

type userRepo struct{ s *Store }

func (r userRepo) List(ctx context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	users := make([]models.User, 0, len(r.s.users))
	for _, id := range sortedKeys(r.s.users) {
		users = append(users, r.s.users[id])
	}
	return users, nil
}

func (r userRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r userRepo) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == user.Username {
			return repository.ErrConflict
		}
	}
	user.ID = r.s.nextUserID
	r.s.nextUserID++
	r.s.users[user.ID] = *user
	return nil
}

func (r userRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

type portfolioRepo struct{ s *Store }

func (r portfolioRepo) List(ctx context.Context) ([]models.PortfolioItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]models.PortfolioItem, 0, len(r.s.portfolio))
	for _, id := range sortedKeys(r.s.portfolio) {
		items = append(items, clonePortfolio(r.s.portfolio[id]))
	}
	return items, nil
}

func (r portfolioRepo) GetByID(ctx context.Context, id uint) (*models.PortfolioItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	item, ok := r.s.portfolio[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	item = clonePortfolio(item)
	return &item, nil
}

func (r portfolioRepo) Create(ctx context.Context, item *models.PortfolioItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.ID = r.s.nextPortfolioID
	r.s.nextPortfolioID++
	*item = clonePortfolio(*item)
	r.s.portfolio[item.ID] = clonePortfolio(*item)
	return nil
}

func (r portfolioRepo) Update(ctx context.Context, id uint, patch models.PortfolioPatch) (*models.PortfolioItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.portfolio[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	item = clonePortfolio(item)
	patch.Apply(&item)
	r.s.portfolio[id] = clonePortfolio(item)
	return &item, nil
}

func (r portfolioRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.portfolio, id)
	return nil
}

type testimonialRepo struct{ s *Store }

func (r testimonialRepo) List(ctx context.Context) ([]models.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	testimonials := make([]models.Testimonial, 0, len(r.s.testimonials))
	for _, id := range sortedKeys(r.s.testimonials) {
		testimonials = append(testimonials, r.s.testimonials[id])
	}
	return testimonials, nil
}

func (r testimonialRepo) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.testimonials[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r testimonialRepo) Create(ctx context.Context, testimonial *models.Testimonial) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	testimonial.ID = r.s.nextTestimonialID
	r.s.nextTestimonialID++
	r.s.testimonials[testimonial.ID] = *testimonial
	return nil
}

func (r testimonialRepo) Update(ctx context.Context, id uint, patch models.TestimonialPatch) (*models.Testimonial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.testimonials[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(&t)
	r.s.testimonials[id] = t
	return &t, nil
}

func (r testimonialRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.testimonials, id)
	return nil
}

type contactRepo struct{ s *Store }

func (r contactRepo) List(ctx context.Context) ([]models.ContactSubmission, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	submissions := make([]models.ContactSubmission, 0, len(r.s.contacts))
	for _, id := range sortedKeys(r.s.contacts) {
		submissions = append(submissions, cloneContact(r.s.contacts[id]))
	}
	return submissions, nil
}

func (r contactRepo) GetByID(ctx context.Context, id uint) (*models.ContactSubmission, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.contacts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c = cloneContact(c)
	return &c, nil
}

func (r contactRepo) Create(ctx context.Context, submission *models.ContactSubmission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	submission.ID = r.s.nextContactID
	r.s.nextContactID++
	submission.CreatedAt = r.s.now().UTC().Truncate(time.Microsecond)
	submission.Read = false
	r.s.contacts[submission.ID] = cloneContact(*submission)
	return nil
}

func (r contactRepo) MarkRead(ctx context.Context, id uint) (*models.ContactSubmission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.contacts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.Read = true
	r.s.contacts[id] = c
	c = cloneContact(c)
	return &c, nil
}

func (r contactRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.contacts, id)
	return nil
}
