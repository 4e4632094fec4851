package handler

import (
	"net/http"

	"github.com/eventforge/backend/internal/models"
	"github.com/eventforge/backend/internal/repository"
	"github.com/eventforge/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const contactNotFound = "Contact submission not found"

type ContactHandler struct {
	repo    repository.ContactRepository
	respond *Responder
}

func NewContactHandler(repo repository.ContactRepository, respond *Responder) *ContactHandler {
	return &ContactHandler{repo: repo, respond: respond}
}

// CreateContactRequest is the public contact form. createdAt and read are
// assigned by the server and ignored here.
type CreateContactRequest struct {
	Name      string  `json:"name" binding:"required,max=200"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	EventType *string `json:"eventType" binding:"omitempty,max=100"`
	Message   string  `json:"message" binding:"required,max=5000"`
}

func (r *CreateContactRequest) normalize() {
	trim(&r.Name)
	trim(&r.Email)
	trimOptional(&r.Phone)
	trimOptional(&r.EventType)
	trim(&r.Message)
}

// List GET /api/contact
func (h *ContactHandler) List(c *gin.Context) {
	submissions, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// Get GET /api/contact/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}

	submission, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err, contactNotFound)
		return
	}
	c.JSON(http.StatusOK, submission)
}

// Create POST /api/contact
func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := bindJSON(c, &req, "Invalid contact submission data"); err != nil {
		h.respond.Error(c, err, "")
		return
	}

	submission := &models.ContactSubmission{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		EventType: req.EventType,
		Message:   req.Message,
	}
	if err := h.repo.Create(c.Request.Context(), submission); err != nil {
		h.respond.Error(c, err, "")
		return
	}

	logger.Log.Info("Contact submission received",
		zap.Uint("submission_id", submission.ID),
	)
	c.JSON(http.StatusCreated, submission)
}

// MarkRead PATCH /api/contact/:id/read
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respond.Error(c, err, "")
		return
	}

	submission, err := h.repo.MarkRead(c.Request.Context(), id)
	if err != nil {
		h.respond.Error(c, err, contactNotFound)
		return
	}
	c.JSON(http.StatusOK, submission)
}

// Delete DELETE /api/contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
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
