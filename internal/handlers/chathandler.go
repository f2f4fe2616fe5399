package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-application-assistant/internal/config"
	"github.com/justsurfingit/job-application-assistant/internal/dtos"
	"github.com/justsurfingit/job-application-assistant/internal/services"
	"github.com/justsurfingit/job-application-assistant/internal/session"
)

// ChatHandler wires the turn loop to HTTP.
type ChatHandler struct {
	Chat     *services.ChatService
	Sessions *session.Store
	Config   *config.Config
}

func NewChatHandler(chat *services.ChatService, sessions *session.Store, cfg *config.Config) *ChatHandler {
	return &ChatHandler{Chat: chat, Sessions: sessions, Config: cfg}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PostChat is POST /chat: one user message in, one assistant reply out.
func (h *ChatHandler) PostChat(c *gin.Context) {
	var req dtos.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	sessionID := h.Sessions.Ensure(req.SessionID)
	reply := h.Chat.ProcessTurn(c.Request.Context(), sessionID, req.Message)

	c.JSON(http.StatusOK, dtos.ChatResponse{
		SessionID:  sessionID,
		Reply:      reply.Content,
		JobDetails: reply.JobDetails,
	})
}

// PostSample injects the canned demo message and processes it like any
// other turn.
func (h *ChatHandler) PostSample(c *gin.Context) {
	var req dtos.ChatRequest
	// Body is optional here; an existing session id is honored if sent.
	_ = c.ShouldBindJSON(&req)

	sessionID := h.Sessions.Ensure(req.SessionID)
	reply := h.Chat.ProcessTurn(c.Request.Context(), sessionID, services.SampleMessage)

	c.JSON(http.StatusOK, dtos.ChatResponse{
		SessionID:  sessionID,
		Reply:      reply.Content,
		JobDetails: reply.JobDetails,
	})
}

// GetHistory is GET /chat/history?session_id=...
func (h *ChatHandler) GetHistory(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}
	c.JSON(http.StatusOK, dtos.HistoryResponse{
		SessionID: sessionID,
		Messages:  h.Sessions.History(sessionID),
	})
}

// PostReset clears the visible conversation. The sheet is untouched.
func (h *ChatHandler) PostReset(c *gin.Context) {
	var req dtos.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	h.Sessions.Reset(req.SessionID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetConfigStatus reports which capabilities are live, mirroring the
// configuration panel of the UI.
func (h *ChatHandler) GetConfigStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dtos.ConfigStatusResponse{
		Gemini: h.Config.GeminiConfigured(),
		Sheets: h.Config.SheetsConfigured(),
	})
}
