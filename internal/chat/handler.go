// Package chat implements the agent chat endpoint: a templated echo that
// prefixes the reply with the referenced agent's persona when one can be
// resolved. The endpoint is fail-soft with respect to the store: a bad or
// missing agent reference never produces an error response.
package chat

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/flamescrm/agent-platform/internal/crm"
	"github.com/flamescrm/agent-platform/internal/routes"
	"github.com/flamescrm/agent-platform/internal/store"
	"github.com/flamescrm/agent-platform/pkg/handlers"
)

const (
	defaultPrefix = "Agent"
	personaLimit  = 60
)

// Request is the chat request body. AgentID is optional.
type Request struct {
	AgentID string `json:"agent_id"`
	Message string `json:"message"`
}

// Response is the chat reply body.
type Response struct {
	Reply string `json:"reply"`
}

// Handler provides the chat HTTP endpoint.
type Handler struct {
	sys    store.System
	logger *slog.Logger
}

// NewHandler creates a chat handler backed by the given store.
func NewHandler(sys store.System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("system", "chat"),
	}
}

// Routes returns the route group configuration for the chat endpoint.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/api/agent",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/chat", Handler: h.Chat},
		},
	}
}

// Chat handles POST /api/agent/chat. The message field is required; the
// reply uses the agent's persona as a prefix when the lookup succeeds and
// falls back to the default prefix on any failure.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if req.Message == "" {
		handlers.RespondValidation(w, h.logger, &crm.ValidationError{Field: "message", Reason: "required"})
		return
	}

	prefix := h.personaPrefix(r, req.AgentID)
	reply := fmt.Sprintf("%s: I received your message — '%s'. How can I help further?", prefix, req.Message)

	handlers.RespondJSON(w, http.StatusOK, Response{Reply: reply})
}

func (h *Handler) personaPrefix(r *http.Request, agentID string) string {
	if agentID == "" || !h.sys.Available() {
		return defaultPrefix
	}

	doc, err := h.sys.FindByID(r.Context(), "agent", agentID)
	if err != nil {
		h.logger.Debug("agent lookup failed, using default prefix", "agent_id", agentID, "error", err)
		return defaultPrefix
	}

	persona, ok := doc["persona"].(string)
	if !ok || persona == "" {
		return defaultPrefix
	}

	return truncate(persona, personaLimit)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
