package handlers

import (
	"errors"
	"net/http"

	"github.com/foundrylabs/daybrief/internal/dto"
	"github.com/foundrylabs/daybrief/internal/note"
	"github.com/foundrylabs/daybrief/internal/repo"

	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	svc      *note.Service
	founders repo.FounderRepo
}

func NewInsightHandler(svc *note.Service, founders repo.FounderRepo) *InsightHandler {
	return &InsightHandler{svc: svc, founders: founders}
}

// Generate handles POST /insights/generate.
func (h *InsightHandler) Generate(c *gin.Context) {
	founder, ok := loadFounder(c, h.founders)
	if !ok {
		return
	}

	var req dto.GenerateInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	insight, err := h.svc.GenerateInsight(c.Request.Context(), founder.ID, req.Context)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate insight",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insight": dto.InsightFromDomain(insight)})
}

// List handles GET /insights.
func (h *InsightHandler) List(c *gin.Context) {
	founder, ok := loadFounder(c, h.founders)
	if !ok {
		return
	}

	insights, err := h.svc.ListInsights(c.Request.Context(), founder.ID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list insights"})
		return
	}
	resp := make([]dto.InsightResponse, 0, len(insights))
	for _, i := range insights {
		resp = append(resp, dto.InsightFromDomain(i))
	}
	c.JSON(http.StatusOK, gin.H{"insights": resp})
}

// Dismiss handles POST /insights/:id/dismiss.
func (h *InsightHandler) Dismiss(c *gin.Context) {
	founder, ok := loadFounder(c, h.founders)
	if !ok {
		return
	}

	err := h.svc.DismissInsight(c.Request.Context(), founder.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, note.ErrInsightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "insight not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dismiss insight"})
		return
	}
	c.Status(http.StatusNoContent)
}
