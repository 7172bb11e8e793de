package handlers

import (
	"net/http"

	"github.com/foundrylabs/daybrief/internal/dto"
	"github.com/foundrylabs/daybrief/internal/note"
	"github.com/foundrylabs/daybrief/internal/repo"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc      *note.Service
	founders repo.FounderRepo
}

func NewDashboardHandler(svc *note.Service, founders repo.FounderRepo) *DashboardHandler {
	return &DashboardHandler{svc: svc, founders: founders}
}

// Get handles GET /dashboard: the founder's profile, today's note, open
// insights, top tasks, and today's events in one response.
func (h *DashboardHandler) Get(c *gin.Context) {
	founder, ok := loadFounder(c, h.founders)
	if !ok {
		return
	}

	d, err := h.svc.Dashboard(c.Request.Context(), founder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, dto.DashboardFromDomain(d))
}
