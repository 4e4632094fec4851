package handler

import (
	"net/http"

	"github.com/eventforge/backend/internal/models"
	"github.com/eventforge/backend/internal/repository"
	"github.com/gin-gonic/gin"
)

const portfolioNotFound = "Portfolio item not found"

type PortfolioHandler struct {
	repo    repository.PortfolioRepository
	respond *Responder
}

func NewPortfolioHandler(repo repository.PortfolioRepository, respond *Responder) *PortfolioHandler {
	return &PortfolioHandler{repo: repo, respond: respond}
}

type CreatePortfolioRequest struct {
	Title       string   `json:"title" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Venue       *string  `json:"venue"`
	ImageURL    string   `json:"imageUrl" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Overview    string   `json:"overview" binding:"required"`
	Role        LineList `json:"role" binding:"required,min=1"`
	Results     string   `json:"results" binding:"required"`
	Tags        TagList  `json:"tags" binding:"required,min=1"`
	Featured    *bool    `json:"featured"`
}

func (r *CreatePortfolioRequest) normalize() {
	trim(&r.Title)
	trim(&r.Category)
	trimOptional(&r.Venue)
	trim(&r.ImageURL)
	trim(&r.Description)
	trim(&r.Overview)
	trim(&r.Results)
}

func (r *CreatePortfolioRequest) model() *models.PortfolioItem {
	item := &models.PortfolioItem{
		Title:       r.Title,
		Category:    r.Category,
		Venue:       r.Venue,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Overview:    r.Overview,
		Role:        r.Role,
		Results:     r.Results,
		Tags:        r.Tags,
	}
	if r.Featured != nil {
		item.Featured = *r.Featured
	}
	return item
}

// UpdatePortfolioRequest is a partial item; absent fields are left unchanged.
type UpdatePortfolioRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Category    *string  `json:"category" binding:"omitempty,min=1"`
	Venue       *string  `json:"venue"`
	ImageURL    *string  `json:"imageUrl" binding:"omitempty,min=1"`
	Description *string  `json:"description" binding:"omitempty,min=1"`
	Overview    *string  `json:"overview" binding:"omitempty,min=1"`
	Role        LineList `json:"role" binding:"omitempty,min=1"`
	Results     *string  `json:"results" binding:"omitempty,min=1"`
	Tags        TagList  `json:"tags" binding:"omitempty,min=1"`
	Featured    *bool    `json:"featured"`
}

func (r *UpdatePortfolioRequest) normalize() {
	trim(r.Title)
	trim(r.Category)
	trim(r.Venue) // left as "" so the patch clears the venue
	trim(r.ImageURL)
	trim(r.Description)
	trim(r.Overview)
	trim(r.Results)
}

func (r *UpdatePortfolioRequest) patch() models.PortfolioPatch {
	return models.PortfolioPatch{
		Title:       r.Title,
		Category:    r.Category,
		Venue:       r.Venue,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Overview:    r.Overview,
		Role:        r.Role,
		Results:     r.Results,
		Tags:        r.Tags,
		Featured:    r.Featured,
	}
}

// List GET /api/portfolio
func (h *PortfolioHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get GET /api/portfolio/:id
func (h *PortfolioHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err, portfolioNotFound)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create POST /api/portfolio
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req CreatePortfolioRequest
	if err := bindJSON(c, &req, "Invalid portfolio item data"); err != nil {
		h.respond.Error(c, err, "")
		return
	}

	item := req.model()
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		h.respond.Error(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update PUT /api/portfolio/:id
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}

	var req UpdatePortfolioRequest
	if err := bindJSON(c, &req, "Invalid portfolio item data"); err != nil {
		h.respond.Error(c, err, "")
		return
	}

	item, err := h.repo.Update(c.Request.Context(), id, req.patch())
	if err != nil {
		h.respond.Error(c, err, portfolioNotFound)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete DELETE /api/portfolio/:id; deleting a missing item still answers 204
func (h *PortfolioHandler) Delete(c *gin.Context) {
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
