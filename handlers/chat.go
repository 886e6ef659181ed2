package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ticketbharat/models"
	"ticketbharat/services/flow"
	ai "ticketbharat/services/intelligence"
	"ticketbharat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational booking flow over HTTP. Each
// session is a single logical thread of control: one action is fully
// applied and saved before the next is accepted.
type ChatHandler struct {
	Engine   *flow.Engine
	Store    flow.SessionStore
	Resolver ai.FaqResolver
	Logger   *zap.Logger
}

func NewChatHandler(engine *flow.Engine, store flow.SessionStore, resolver ai.FaqResolver, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Engine: engine, Store: store, Resolver: resolver, Logger: logger}
}

type startSessionRequest struct {
	Language string `json:"language"`
}

type modeRequest struct {
	Mode models.ChatMode `json:"mode" binding:"required"`
}

type paymentRequest struct {
	Result string `json:"result" binding:"required"` // "success" | "cancel"
}

// StartSession creates a fresh chat session.
func (h *ChatHandler) StartSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session := h.Engine.NewSession(req.Language)
	if err := h.Store.Save(c.Request.Context(), session); err != nil {
		h.Logger.Error("Failed to store new chat session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create session", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"prompt":  h.Engine.PromptFor(session),
	})
}

// GetSession returns a session snapshot with its current prompt.
func (h *ChatHandler) GetSession(c *gin.Context) {
	session, ok := h.loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"prompt":  h.Engine.PromptFor(session),
	})
}

// Select applies one discrete user selection to the booking flow.
func (h *ChatHandler) Select(c *gin.Context) {
	var sel models.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, ok := h.loadSession(c)
	if !ok {
		return
	}

	prompt, err := h.Engine.Advance(session, sel)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.saveAndRespond(c, session, prompt)
}

// SwitchMode flips between the booking flow and the free-question
// surface. Entering booking mode restarts the flow with a fresh order.
func (h *ChatHandler) SwitchMode(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.Mode != models.ModeBooking && req.Mode != models.ModeFaq {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown mode")
		return
	}

	session, ok := h.loadSession(c)
	if !ok {
		return
	}

	prompt := h.Engine.SwitchMode(session, req.Mode)
	h.saveAndRespond(c, session, prompt)
}

// AskQuestion forwards a free-text question to the FAQ resolver and
// applies the outcome. While a resolution is in flight the session
// rejects further questions, so outcomes apply in submission order.
func (h *ChatHandler) AskQuestion(c *gin.Context) {
	var req models.FaqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, ok := h.loadSession(c)
	if !ok {
		return
	}
	if session.Mode != models.ModeFaq {
		utils.JSONError(c, http.StatusConflict, "session is not in question mode", "")
		return
	}
	if session.Resolving {
		utils.JSONError(c, http.StatusConflict, flow.ErrResolutionInFlight.Error(), "")
		return
	}

	// Mark the session busy before the external call so a concurrent
	// submission sees the in-flight flag.
	session.Resolving = true
	h.Engine.AppendUserMessage(session, req.Question)
	if err := h.Store.Save(c.Request.Context(), session); err != nil {
		h.Logger.Error("Failed to save chat session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save session", "")
		return
	}

	outcome := h.Resolver.Resolve(c.Request.Context(), req.Question, session.Language)

	session.Resolving = false
	var prompt *models.Prompt
	if outcome.Intent == models.IntentSwitchToBooking {
		h.Engine.AppendBotMessage(session, outcome.Answer)
		prompt = h.Engine.SwitchMode(session, models.ModeBooking)
	} else {
		h.Engine.AppendBotMessage(session, outcome.Answer)
		prompt = h.Engine.PromptFor(session)
	}

	// The in-flight flag is already stored, so this save must not ride
	// on the request context: the client may have disconnected during
	// the resolution, and a skipped save would leave the session
	// rejecting questions until its TTL lapses.
	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Store.Save(saveCtx, session); err != nil {
		h.Logger.Error("Failed to save chat session", zap.Error(err))
		if err := h.Store.Save(saveCtx, session); err != nil {
			h.Logger.Error("Failed to clear resolution flag; session stays busy until expiry",
				zap.Error(err), zap.String("session", session.SessionID))
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to save session", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"prompt":  prompt,
		"outcome": outcome,
	})
}

// CompletePayment applies the mock payment callback.
func (h *ChatHandler) CompletePayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.Result != "success" && req.Result != "cancel" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "result must be success or cancel")
		return
	}

	session, ok := h.loadSession(c)
	if !ok {
		return
	}

	prompt, err := h.Engine.CompletePayment(c.Request.Context(), session, req.Result == "success")
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.saveAndRespond(c, session, prompt)
}

// EndSession discards a session.
func (h *ChatHandler) EndSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Store.Delete(c.Request.Context(), sessionID); err != nil {
		h.Logger.Error("Failed to delete chat session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete session", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": sessionID})
}

func (h *ChatHandler) loadSession(c *gin.Context) (*models.ChatSession, bool) {
	sessionID := c.Param("sessionID")
	session, err := h.Store.Get(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, flow.ErrSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "chat session not found or expired", "")
		} else {
			h.Logger.Error("Failed to load chat session", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to load session", "")
		}
		return nil, false
	}
	return session, true
}

func (h *ChatHandler) saveAndRespond(c *gin.Context, session *models.ChatSession, prompt *models.Prompt) {
	if err := h.Store.Save(c.Request.Context(), session); err != nil {
		h.Logger.Error("Failed to save chat session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save session", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"prompt":  prompt,
	})
}

func (h *ChatHandler) respondFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, flow.ErrInvalidSelection):
		utils.JSONError(c, http.StatusBadRequest, "invalid selection", err.Error())
	case errors.Is(err, flow.ErrFlowInvariant):
		// Unreachable through the offered controls; a client hitting
		// this is a bug, not a user mistake.
		h.Logger.Error("Booking flow invariant violated", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking flow error", "")
	default:
		h.Logger.Error("Flow advance failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking flow error", "")
	}
}
