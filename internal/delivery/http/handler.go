package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roomlens/backend/internal/domain"
	"github.com/roomlens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	restyleService *usecase.RestyleService
	recommender    *usecase.RecommendationService
	ledger         domain.CreditLedger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	restyleService *usecase.RestyleService,
	recommender *usecase.RecommendationService,
	ledger domain.CreditLedger,
) *Handler {
	return &Handler{
		restyleService: restyleService,
		recommender:    recommender,
		ledger:         ledger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "roomlens-backend",
		"version": "1.0.0",
	})
}

// Restyle handles the full restyle flow: credit check, image
// transformation and product recommendations.
func (h *Handler) Restyle(c *gin.Context) {
	if h.restyleService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Restyle service not available"})
		return
	}

	var req domain.RestyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	response, err := h.restyleService.Restyle(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrNoCredits):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "No restyle credits remaining"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Restyle failed"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// Recommendations serves product recommendations without touching credits
// or the image provider.
func (h *Handler) Recommendations(c *gin.Context) {
	if h.recommender == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recommendation service not available"})
		return
	}

	var criteria domain.SelectionCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result := h.recommender.Recommend(criteria)
	c.JSON(http.StatusOK, result)
}

// GetCredits returns a user's remaining restyle credits.
func (h *Handler) GetCredits(c *gin.Context) {
	if h.ledger == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Credit ledger not available"})
		return
	}

	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	balance, err := h.ledger.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read credits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":  userID,
		"credits": balance,
	})
}
