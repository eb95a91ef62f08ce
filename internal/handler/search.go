package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"casafinder/internal/catalog"
	"casafinder/internal/model"
	"casafinder/internal/service"
)

// SearchHandler handles direct criteria search requests, bypassing the
// conversational extraction layer.
type SearchHandler struct {
	search *service.HouseSearch
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search *service.HouseSearch) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	start := time.Now()
	matches, err := h.search.Search(c.Request.Context(), req.Criteria)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "El catálogo de propiedades no está disponible en este momento"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.SearchResponse{
		SearchID: uuid.NewString(),
		Matches:  matches,
		Took:     time.Since(start).Milliseconds(),
	})
}
