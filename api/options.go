package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/casve-tools/decision-api/domain"
	"github.com/casve-tools/decision-api/llm"
	"github.com/casve-tools/decision-api/prompt"
	"github.com/casve-tools/decision-api/store"
)

// The generation-log prompt field points at the activity log instead of
// duplicating the rendered prompt.
const promptLogNote = "Steps 0-2 data (see user_activity log)"

// GenerateOptions generates decision options from steps 0-2.
// POST /api/generate-options
func (h *Handler) GenerateOptions(c echo.Context) error {
	var req domain.GenerateOptionsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.GenerateOptionsResponse{
			Success: false,
			Error:   "invalid request body",
		})
	}
	if err := store.ValidateSessionID(req.SessionID); err != nil {
		return c.JSON(http.StatusBadRequest, domain.GenerateOptionsResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	requestID := "gen_" + uuid.New().String()[:8]
	log := h.log.With("session_id", req.SessionID, "request_id", requestID)
	log.Infow("received generate options request")

	err := h.store.RecordActivity(req.SessionID, "generate_options_request", map[string]interface{}{
		"step0": req.Step0,
		"step1": req.Step1,
		"step2": req.Step2,
	})
	if err != nil {
		log.Errorw("failed to record activity", "error", err)
		return c.JSON(http.StatusInternalServerError, domain.GenerateOptionsResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	userPrompt := prompt.Build(req.Step0, req.Step1, req.Step2)
	systemPrompt := prompt.SystemInstruction(req.Step2.InformationTemplate)

	result, err := h.generator.GenerateOptions(c.Request().Context(), systemPrompt, userPrompt)
	if err != nil {
		log.Errorw("llm generation failed", "error", err)
		return c.JSON(http.StatusInternalServerError, domain.GenerateOptionsResponse{
			Success: false,
			Error:   "LLM generation failed",
		})
	}

	options, err := llm.ParseOptions(result.Content)
	if err != nil {
		// Raw text goes to the process log only, never back to the caller.
		log.Errorw("failed to parse llm response", "error", err, "raw_response", result.Content)
		return c.JSON(http.StatusInternalServerError, domain.GenerateOptionsResponse{
			Success: false,
			Error:   "Failed to parse LLM response",
		})
	}

	// The generation log is written only after a successful parse.
	err = h.store.RecordGeneration(req.SessionID, store.GenerationRecord{
		Prompt:     promptLogNote,
		Response:   result.Content,
		Model:      result.Model,
		TokensUsed: result.Usage,
	})
	if err != nil {
		log.Errorw("failed to record generation", "error", err)
		return c.JSON(http.StatusInternalServerError, domain.GenerateOptionsResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	log.Infow("generated options", "count", len(options), "total_tokens", result.Usage.TotalTokens)

	return c.JSON(http.StatusOK, domain.GenerateOptionsResponse{
		Success:    true,
		Options:    options,
		TokensUsed: &result.Usage,
	})
}
