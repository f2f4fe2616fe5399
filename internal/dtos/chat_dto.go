package dtos

import "github.com/justsurfingit/job-application-assistant/internal/models"

type ChatRequest struct {
	// SessionID may be empty on the first message; the server mints one.
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

type ChatResponse struct {
	SessionID  string                 `json:"session_id"`
	Reply      string                 `json:"reply"`
	JobDetails *models.JobApplication `json:"job_details,omitempty"`
}

type SessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

type HistoryResponse struct {
	SessionID string               `json:"session_id"`
	Messages  []models.ChatMessage `json:"messages"`
}

type ConfigStatusResponse struct {
	Gemini bool `json:"gemini"`
	Sheets bool `json:"sheets"`
}
