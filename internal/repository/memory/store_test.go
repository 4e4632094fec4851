package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/eventforge/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolio_ReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	venue := "Harbour Hall"
	item := &models.PortfolioItem{Title: "Gala", Venue: &venue, Role: []string{"Planning"}, Tags: []string{"Charity"}}
	require.NoError(t, store.Portfolio().Create(ctx, item))

	got, err := store.Portfolio().GetByID(ctx, item.ID)
	require.NoError(t, err)
	got.Role[0] = "mutated"
	*got.Venue = "mutated"
	item.Tags[0] = "mutated"

	again, err := store.Portfolio().GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Planning"}, again.Role)
	assert.Equal(t, []string{"Charity"}, again.Tags)
	assert.Equal(t, "Harbour Hall", *again.Venue)
}

func TestContacts_CreatedAtUsesStoreClock(t *testing.T) {
	store := NewStore()
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.FixedZone("CET", 3600))
	store.now = func() time.Time { return fixed }

	submission := &models.ContactSubmission{Name: "Jane", Email: "jane@example.com", Message: "Hi"}
	require.NoError(t, store.Contacts().Create(context.Background(), submission))

	assert.Equal(t, time.UTC, submission.CreatedAt.Location())
	assert.True(t, submission.CreatedAt.Equal(fixed.Truncate(time.Microsecond)))
}

func TestPing_HonoursContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())

	assert.NoError(t, store.Ping(ctx))
	cancel()
	assert.ErrorIs(t, store.Ping(ctx), context.Canceled)
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	const workers = 50
	ids := make(chan uint, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			submission := &models.ContactSubmission{Name: "n", Email: "e@example.com", Message: "m"}
			if err := store.Contacts().Create(ctx, submission); err == nil {
				ids <- submission.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d handed out twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)

	list, err := store.Contacts().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, workers)
}
