package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"noticegen/internal/draft"
	"noticegen/internal/logger"
)

type DraftHandler struct {
	Drafter      Drafter
	Metrics      *Metrics
	MaxBodyBytes int64
}

type draftRequest struct {
	Prompt string `json:"prompt"`
}

type draftResponse struct {
	Lines []string `json:"lines"`
}

func (h DraftHandler) Draft(w http.ResponseWriter, r *http.Request) {
	if h.Drafter == nil {
		WriteError(w, r, http.StatusServiceUnavailable, "draft_disabled", "drafting is not enabled")
		return
	}
	raw, err := readBody(w, r, h.MaxBodyBytes)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "could not read request body")
		return
	}
	var req draftRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON")
		return
	}

	lines, err := h.Drafter.Draft(r.Context(), req.Prompt)
	h.Metrics.observeDraft(err)
	switch {
	case err == nil:
		WriteJSON(w, http.StatusOK, draftResponse{Lines: lines})
	case errors.Is(err, draft.ErrEmptyPrompt):
		WriteError(w, r, http.StatusBadRequest, "prompt_required", "prompt is required")
	case errors.Is(err, draft.ErrNoAPIKey):
		WriteError(w, r, http.StatusServiceUnavailable, "no_api_key", err.Error())
	default:
		logger.FromContext(r.Context()).Warn("draft failed", "err", err)
		WriteError(w, r, http.StatusBadGateway, "upstream_error", err.Error())
	}
}
