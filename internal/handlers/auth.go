package handlers

import (
	"errors"
	"net/http"

	"github.com/foundrylabs/daybrief/internal/auth"
	dom "github.com/foundrylabs/daybrief/internal/domain"
	"github.com/foundrylabs/daybrief/internal/dto"
	"github.com/foundrylabs/daybrief/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionMaxAgeSeconds = 24 * 60 * 60

// AuthHandler handles founder registration, login, and logout.
type AuthHandler struct {
	sessions *auth.Store
	founders repo.FounderRepo
}

func NewAuthHandler(sessions *auth.Store, founders repo.FounderRepo) *AuthHandler {
	return &AuthHandler{sessions: sessions, founders: founders}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	founder, err := h.founders.Create(c.Request.Context(), dom.Founder{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Company:      req.Company,
	})
	if err != nil {
		if repo.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	h.startSession(c, founder, http.StatusCreated)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	founder, err := h.founders.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(founder.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	h.startSession(c, founder, http.StatusOK)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(auth.SessionCookieName)
	if err == nil && sessionID != "" {
		_ = h.sessions.Delete(c.Request.Context(), sessionID)
	}
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) startSession(c *gin.Context, founder dom.Founder, status int) {
	sessionID, err := h.sessions.Create(c.Request.Context(), founder.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.SetCookie(auth.SessionCookieName, sessionID, sessionMaxAgeSeconds, "/", "", false, true)
	c.JSON(status, gin.H{"ok": true, "founder": dto.FounderResponse{
		ID:      founder.ID,
		Email:   founder.Email,
		Name:    founder.Name,
		Company: founder.Company,
	}})
}
