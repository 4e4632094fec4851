package seed

import (
	"context"
	"testing"

	"github.com/eventforge/backend/internal/repository/memory"
	"github.com/eventforge/backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_SeedsEmptyStoreOnce(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, Content(ctx, store))
	require.NoError(t, Content(ctx, store))

	items, err := store.Portfolio().List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(SamplePortfolio()))
	assert.Equal(t, "Annual Tech Summit", items[0].Title)
	assert.True(t, items[0].Featured)

	testimonials, err := store.Testimonials().List(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, len(SampleTestimonials()))
}

func TestSamples_AreWellFormed(t *testing.T) {
	for _, item := range SamplePortfolio() {
		assert.NotEmpty(t, item.Title)
		assert.NotEmpty(t, item.ImageURL)
		assert.NotEmpty(t, item.Role, item.Title)
		assert.NotEmpty(t, item.Tags, item.Title)
	}
	for _, testimonial := range SampleTestimonials() {
		assert.GreaterOrEqual(t, testimonial.Rating, 1)
		assert.LessOrEqual(t, testimonial.Rating, 5)
		assert.Len(t, testimonial.AvatarInitials, 2)
	}
}

func TestAdmin_CreatesOnceAndHashesPassword(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	user, created, err := Admin(ctx, store.Users(), "admin", "Admin123456")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, "Admin123456", user.Password)
	assert.True(t, utils.VerifyPassword("Admin123456", user.Password))

	again, created, err := Admin(ctx, store.Users(), "admin", "other-password")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)
	assert.True(t, utils.VerifyPassword("Admin123456", again.Password), "existing password is kept")
}
