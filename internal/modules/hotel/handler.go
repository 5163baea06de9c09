package hotel

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickstay/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels", h.Register)
	rg.GET("/hotels/me", h.GetOwn)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hotel, err := h.service.RegisterHotel(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyRegistered):
			response.Error(c, http.StatusConflict, "ALREADY_REGISTERED", "Account already has a hotel")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register hotel")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"hotel": hotel})
}

func (h *Handler) GetOwn(c *gin.Context) {
	hotel, err := h.service.GetOwnHotel(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No hotel registered for this account")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch hotel")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}
