package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/streamvault/streamvault/internal/domain"
	"github.com/streamvault/streamvault/internal/service"
	"github.com/streamvault/streamvault/internal/transport/http/middleware"
)

type UserHandler struct {
	authService         *service.AuthService
	notificationService *service.NotificationService
	paymentService      *service.PaymentService
}

func NewUserHandler(authService *service.AuthService, notificationService *service.NotificationService, paymentService *service.PaymentService) *UserHandler {
	return &UserHandler{
		authService:         authService,
		notificationService: notificationService,
		paymentService:      paymentService,
	}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	view, err := h.authService.GetProfile(r.Context(), identity.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "User not found")
		} else {
			log.Printf("ERROR get profile: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to fetch profile")
		}
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	var input service.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	view, err := h.authService.UpdateProfile(r.Context(), identity.Email, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusBadRequest, "EMAIL_TAKEN", "Email already exists")
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "User not found")
		default:
			log.Printf("ERROR update profile: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to update profile")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated",
		"user":    view,
	})
}

func (h *UserHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	var input struct {
		Plan domain.Plan `json:"plan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if input.Plan == "" {
		writeError(w, http.StatusBadRequest, "MISSING_FIELD", "Plan is required")
		return
	}

	plan, err := h.authService.UpdatePlan(r.Context(), identity.Email, input.Plan)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlan):
			writeError(w, http.StatusBadRequest, "INVALID_PLAN", "Plan must be Basic, Standard or Premium")
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "User not found")
		default:
			log.Printf("ERROR update plan: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to update plan")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Plan updated",
		"plan":    plan,
	})
}

// Notifications serves the global feed; any authenticated identity reads
// the same list.
func (h *UserHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	notifications, err := h.notificationService.PullRecent(r.Context(), limit)
	if err != nil {
		log.Printf("ERROR notifications: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Failed to fetch notifications")
		return
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}

	writeJSON(w, http.StatusOK, notifications)
}

func (h *UserHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	var input struct {
		Plan domain.Plan `json:"plan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	intent, err := h.paymentService.CreateIntent(r.Context(), identity.UserID, input.Plan)
	if err != nil {
		log.Printf("ERROR payment intent: %v", err)
		writeError(w, http.StatusInternalServerError, "PAYMENT_FAILED", "Payment failed")
		return
	}

	writeJSON(w, http.StatusOK, intent)
}
