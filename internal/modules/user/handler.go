package user

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickstay/internal/middleware"
	"quickstay/internal/pkg/response"
)

type Handler struct {
	service       *Service
	webhookSecret string
}

func NewHandler(service *Service, webhookSecret string) *Handler {
	return &Handler{service: service, webhookSecret: webhookSecret}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/me", h.Me)
	rg.POST("/users/store-recent-search", h.StoreRecentSearch)
}

func (h *Handler) RegisterWebhookRoutes(rg *gin.RouterGroup) {
	rg.POST("/identity/webhook", h.IdentityWebhook)
}

func (h *Handler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"role":                   u.Role,
		"recent_searched_cities": u.RecentSearchedCities,
	})
}

func (h *Handler) StoreRecentSearch(c *gin.Context) {
	var req StoreRecentCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cities, err := h.service.StoreRecentSearchedCity(c.Request.Context(), c.GetString("user_id"), req.City)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "City must not be empty")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store city")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recent_searched_cities": cities})
}

func (h *Handler) IdentityWebhook(c *gin.Context) {
	got := c.GetHeader("X-Webhook-Secret")
	if h.webhookSecret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.webhookSecret)) != 1 {
		response.Error(c, http.StatusForbidden, "INVALID_SIGNATURE", "Webhook secret rejected")
		return
	}

	var req IdentityWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ApplyIdentityEvent(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unsupported event")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to apply event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"applied": true})
}
