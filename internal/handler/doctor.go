package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medai-pro/medai-server-go/internal/domain/doctor"
	"github.com/medai-pro/medai-server-go/internal/gemini"
	"github.com/medai-pro/medai-server-go/internal/httperror"
)

// ConsultRequest is the consultation request body.
type ConsultRequest struct {
	Message string `json:"message"`
}

// ConsultResponse is the consultation success body.
type ConsultResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// DoctorHandler serves the AI consultation endpoint.
type DoctorHandler struct {
	client  gemini.LLM
	prompts *doctor.Prompts
	logger  *slog.Logger
}

// NewDoctorHandler creates the consultation handler.
func NewDoctorHandler(client gemini.LLM, prompts *doctor.Prompts, logger *slog.Logger) *DoctorHandler {
	return &DoctorHandler{
		client:  client,
		prompts: prompts,
		logger:  logger,
	}
}

// RegisterRoutes registers the consultation routes.
func (h *DoctorHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/ai-doctor", h.handleConsult)
	router.OPTIONS("/api/ai-doctor", h.handlePreflight)
}

// handlePreflight acknowledges preflight requests without validating the
// body or touching the completion path.
func (h *DoctorHandler) handlePreflight(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *DoctorHandler) handleConsult(c *gin.Context) {
	var req ConsultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, httperror.NewInvalidRequest("No JSON data provided"))
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(c, httperror.NewInvalidRequest("Message cannot be empty"))
		return
	}

	if !h.client.Ready() {
		writeError(c, httperror.NewModelUnavailable())
		return
	}

	prompt, err := h.prompts.Consultation(message)
	if err != nil {
		h.logger.Error("consult_prompt_failed", "err", err)
		writeError(c, httperror.NewServerError(err))
		return
	}

	h.logger.Info("consult_query", "preview", httperror.Truncate(message, 50))

	text, err := h.client.Generate(c.Request.Context(), prompt)
	if err != nil {
		h.logConsultError(err)
		writeError(c, classifyGenerateError(err))
		return
	}

	c.JSON(http.StatusOK, ConsultResponse{
		Success:   true,
		Response:  text,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// classifyGenerateError maps completion failures to the client taxonomy.
// Unrecognized errors are upstream failures, reported with truncated detail.
func classifyGenerateError(err error) *httperror.Error {
	switch {
	case errors.Is(err, gemini.ErrNotInitialized):
		return httperror.NewModelUnavailable()
	case errors.Is(err, gemini.ErrEmptyResponse):
		return httperror.NewEmptyUpstreamResponse()
	default:
		return httperror.NewUpstreamError(err)
	}
}

func (h *DoctorHandler) logConsultError(err error) {
	if err == nil {
		return
	}
	h.logger.Error("consult_generate_failed", "err", err)
}
