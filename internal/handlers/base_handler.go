package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/codealpha/backend/internal/middleware"
	"github.com/codealpha/backend/internal/models"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// validate is safe for concurrent use and caches struct metadata
var validate = validator.New()

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// respondServiceError maps a service error onto its HTTP status and logs server side failures
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, models.ErrInvalidScore),
		errors.Is(err, models.ErrInvalidUser),
		errors.Is(err, models.ErrInvalidLesson),
		errors.Is(err, models.ErrNoQuiz):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrLessonNotFound),
		errors.Is(err, models.ErrCourseNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrStoreUnavailable):
		h.logger.Error("failed to "+action,
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
		h.respondError(w, http.StatusServiceUnavailable, "failed to "+action+", please retry")
	default:
		h.logger.Error("failed to "+action,
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "failed to "+action)
	}
}

// respondCompletionError is respondServiceError for routes that write progress
func (h *BaseHandler) respondCompletionError(w http.ResponseWriter, r *http.Request, err error, action string) {
	if errors.Is(err, models.ErrStoreUnavailable) {
		h.logger.Error("failed to "+action,
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
		h.respondError(w, http.StatusServiceUnavailable, "progress was not saved, please retry")
		return
	}
	h.respondServiceError(w, r, err, action)
}

// decodeAndValidate decodes a JSON request body into dst and validates its struct tags.
// An empty body leaves dst at its zero value before validation.
func (h *BaseHandler) decodeAndValidate(r *http.Request, dst any) error {
	if r.Body != nil && r.ContentLength != 0 {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("invalid request body: %w", err)
		}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid request: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid request: %w", err)
	}

	return nil
}

// userID returns the authenticated user of the request
func (h *BaseHandler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}
	return userID, true
}
