package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"casafinder/internal/catalog"
	"casafinder/internal/model"
	"casafinder/internal/service"
)

// ChatHandler handles conversational search requests.
type ChatHandler struct {
	search *service.HouseSearch
}

// NewChatHandler creates a new chat handler
func NewChatHandler(search *service.HouseSearch) *ChatHandler {
	return &ChatHandler{search: search}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.search.HandleTurn(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "El catálogo de propiedades no está disponible en este momento"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
