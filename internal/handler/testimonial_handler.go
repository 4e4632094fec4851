package handler

import (
	"net/http"

	"github.com/eventforge/backend/internal/models"
	"github.com/eventforge/backend/internal/repository"
	"github.com/gin-gonic/gin"
)

const testimonialNotFound = "Testimonial not found"

type TestimonialHandler struct {
	repo    repository.TestimonialRepository
	respond *Responder
}

func NewTestimonialHandler(repo repository.TestimonialRepository, respond *Responder) *TestimonialHandler {
	return &TestimonialHandler{repo: repo, respond: respond}
}

type CreateTestimonialRequest struct {
	Rating         int    `json:"rating" binding:"required,min=1,max=5"`
	Content        string `json:"content" binding:"required"`
	Author         string `json:"author" binding:"required"`
	Position       string `json:"position" binding:"required"`
	AvatarInitials string `json:"avatarInitials" binding:"required,max=4"`
}

func (r *CreateTestimonialRequest) normalize() {
	trim(&r.Content)
	trim(&r.Author)
	trim(&r.Position)
	trim(&r.AvatarInitials)
}

type UpdateTestimonialRequest struct {
	Rating         *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Content        *string `json:"content" binding:"omitempty,min=1"`
	Author         *string `json:"author" binding:"omitempty,min=1"`
	Position       *string `json:"position" binding:"omitempty,min=1"`
	AvatarInitials *string `json:"avatarInitials" binding:"omitempty,min=1,max=4"`
}

func (r *UpdateTestimonialRequest) normalize() {
	trim(r.Content)
	trim(r.Author)
	trim(r.Position)
	trim(r.AvatarInitials)
}

// List GET /api/testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// Get GET /api/testimonials/:id
func (h *TestimonialHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}

	testimonial, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err, testimonialNotFound)
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

// Create POST /api/testimonials
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := bindJSON(c, &req, "Invalid testimonial data"); err != nil {
		h.respond.Error(c, err, "")
		return
	}

	testimonial := &models.Testimonial{
		Rating:         req.Rating,
		Content:        req.Content,
		Author:         req.Author,
		Position:       req.Position,
		AvatarInitials: req.AvatarInitials,
	}
	if err := h.repo.Create(c.Request.Context(), testimonial); err != nil {
		h.respond.Error(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

// Update PUT /api/testimonials/:id
func (h *TestimonialHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}

	var req UpdateTestimonialRequest
	if err := bindJSON(c, &req, "Invalid testimonial data"); err != nil {
		h.respond.Error(c, err, "")
		return
	}

	testimonial, err := h.repo.Update(c.Request.Context(), id, models.TestimonialPatch{
		Rating:         req.Rating,
		Content:        req.Content,
		Author:         req.Author,
		Position:       req.Position,
		AvatarInitials: req.AvatarInitials,
	})
	if err != nil {
		h.respond.Error(c, err, testimonialNotFound)
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

// Delete DELETE /api/testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.respond.Error(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}
