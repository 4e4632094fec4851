package testutil

import (
	"context"
	"testing"

	"github.com/eventforge/backend/internal/models"
	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/internal/utils"
)

// Default credentials used across integration tests
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "Admin123456"
)

// CreateTestUser hashes password and stores the user; it fails the test on error.
func CreateTestUser(t *testing.T, users repository.UserRepository, username, password string) *models.User {
	t.Helper()

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{Username: username, Password: hashedPassword}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create user %q: %v", username, err)
	}
	return user
}

// DefaultAdminUser stores the default admin account
func DefaultAdminUser(t *testing.T, users repository.UserRepository) *models.User {
	return CreateTestUser(t, users, DefaultAdminUsername, DefaultAdminPassword)
}

// NewPortfolioItem returns an unsaved portfolio item with every required field set
func NewPortfolioItem(title string) *models.PortfolioItem {
	return &models.PortfolioItem{
		Title:       title,
		Category:    "Corporate Conference",
		Venue:       Ptr("Grand Hall"),
		ImageURL:    "https://example.com/" + title + ".jpg",
		Description: "Short description of " + title,
		Overview:    "Overview of " + title,
		Role:        []string{"Venue coordination", "Catering"},
		Results:     "Happy clients",
		Tags:        []string{"Corporate", "Conference"},
	}
}

// NewTestimonial returns an unsaved five-star testimonial
func NewTestimonial(author string) *models.Testimonial {
	return &models.Testimonial{
		Rating:         5,
		Content:        "Wonderful event, thank you!",
		Author:         author,
		Position:       "Client",
		AvatarInitials: "TC",
	}
}

// NewContactSubmission returns an unsaved contact form submission
func NewContactSubmission(name string) *models.ContactSubmission {
	return &models.ContactSubmission{
		Name:      name,
		Email:     "client@example.com",
		Phone:     Ptr("+1 555 0100"),
		EventType: Ptr("wedding"),
		Message:   "We would like to plan a wedding next spring.",
	}
}
