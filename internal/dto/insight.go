package dto

import (
	"time"

	dom "github.com/foundrylabs/daybrief/internal/domain"
)

type GenerateInsightRequest struct {
	Context string `json:"context" binding:"required,min=1,max=4000"`
}

type InsightResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Content     string     `json:"content"`
	GeneratedAt time.Time  `json:"generatedAt"`
	DismissedAt *time.Time `json:"dismissedAt"`
}

func InsightFromDomain(i dom.Insight) InsightResponse {
	return InsightResponse{
		ID:          i.ID,
		Type:        i.Type,
		Content:     i.Content,
		GeneratedAt: i.GeneratedAt,
		DismissedAt: i.DismissedAt,
	}
}
