package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casafinder/internal/model"
	"casafinder/internal/service"
)

// FeedbackHandler handles feedback-related HTTP requests
type FeedbackHandler struct {
	search *service.HouseSearch
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(search *service.HouseSearch) *FeedbackHandler {
	return &FeedbackHandler{search: search}
}

// Submit handles POST /api/v1/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	validActions := map[string]bool{
		"click":        true,
		"contact":      true,
		"view_details": true,
	}
	if !validActions[req.Action] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action. Must be one of: click, contact, view_details"})
		return
	}

	if err := h.search.Feedback(c.Request.Context(), req.SearchID, req.CasaID, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log feedback: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.FeedbackResponse{
		Success: true,
		Message: "Feedback logged successfully",
	})
}
