package handlers

import (
	"net/http"

	"github.com/codealpha/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GuestSessionService is the interface that wraps guest session creation.
type GuestSessionService interface {
	// Method StartSession creates a new guest identity and the token authenticating it.
	StartSession() (*models.GuestSessionResponse, error)
}

// GuestHandler starts guest sessions
type GuestHandler struct {
	BaseHandler
	service GuestSessionService
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(svc GuestSessionService, logger *zap.Logger) *GuestHandler {
	return &GuestHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers the guest session route
func (h *GuestHandler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.StartSession)
}

// StartSession handles POST /api/v1/guest/session
// @Summary Start a guest session
// @Description Create a guest identity. Send the returned token as a Bearer token to the /api/v1/guest routes.
// @Tags guest
// @Produce json
// @Success 201 {object} models.GuestSessionResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/guest/session [post]
func (h *GuestHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.StartSession()
	if err != nil {
		h.respondServiceError(w, r, err, "start guest session")
		return
	}

	h.respondJSON(w, http.StatusCreated, session)
}
