package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/foundrylabs/daybrief/internal/auth"
	dom "github.com/foundrylabs/daybrief/internal/domain"
	"github.com/foundrylabs/daybrief/internal/dto"
	"github.com/foundrylabs/daybrief/internal/note"
	"github.com/foundrylabs/daybrief/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// DailyNoteHandler serves note creation and reads.
type DailyNoteHandler struct {
	svc      *note.Service
	founders repo.FounderRepo
}

func NewDailyNoteHandler(svc *note.Service, founders repo.FounderRepo) *DailyNoteHandler {
	return &DailyNoteHandler{svc: svc, founders: founders}
}

// loadFounder resolves the authenticated identity to a founder profile,
// writing the 404 response itself when the profile is missing.
func loadFounder(c *gin.Context, founders repo.FounderRepo) (dom.Founder, bool) {
	founderID := auth.FounderIDFromContext(c)
	founder, err := founders.GetByID(c.Request.Context(), founderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Founder profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load founder profile"})
		}
		return dom.Founder{}, false
	}
	return founder, true
}

// Create handles POST /daily-note: return the existing note for the date or
// gather context, generate, and persist a new one.
func (h *DailyNoteHandler) Create(c *gin.Context) {
	founder, ok := loadFounder(c, h.founders)
	if !ok {
		return
	}

	var req dto.CreateDailyNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, created, err := h.svc.EnsureDailyNote(c.Request.Context(), founder, req.Date.Or(h.svc.Now()))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate daily note",
			"details": err.Error(),
		})
		return
	}

	message := "Daily note already exists"
	if created {
		message = "Daily note generated successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"note":    dto.NoteFromDomain(n),
	})
}

// Get handles GET /daily-note?date=...: fetch the note for the date, marking
// it viewed on first read.
func (h *DailyNoteHandler) Get(c *gin.Context) {
	founder, ok := loadFounder(c, h.founders)
	if !ok {
		return
	}

	var date dto.NoteDate
	if err := date.Parse(c.Query("date")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := h.svc.GetDailyNote(c.Request.Context(), founder.ID, date.Or(h.svc.Now()))
	if err != nil {
		if errors.Is(err, note.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Daily note not found for this date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch daily note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"note": dto.NoteFromDomain(n)})
}
