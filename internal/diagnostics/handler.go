// Package diagnostics implements the liveness and store-diagnostic
// endpoints. Both are fail-soft: every internal failure downgrades to a
// partial report, never an error status, so their availability does not
// depend on store health.
package diagnostics

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/flamescrm/agent-platform/internal/config"
	"github.com/flamescrm/agent-platform/internal/routes"
	"github.com/flamescrm/agent-platform/internal/store"
	"github.com/flamescrm/agent-platform/pkg/handlers"
)

const maxCollections = 10

// Report is the diagnostic response for GET /test. The database_url field
// only reports presence of the connection string, never its value.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Handler provides the liveness and diagnostic HTTP endpoints.
type Handler struct {
	sys    store.System
	logger *slog.Logger
}

// NewHandler creates a diagnostics handler backed by the given store.
func NewHandler(sys store.System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("system", "diagnostics"),
	}
}

// Routes returns the route group configuration for diagnostic endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: h.Root},
			{Method: "GET", Pattern: "/test", Handler: h.Test},
		},
	}
}

// Root handles GET /, a liveness probe with no store access.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "CRM AI Agent Platform Backend running",
	})
}

// Test handles GET /test, reporting store availability, connection-string
// presence, and up to ten collection names. It always returns 200.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	report := Report{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.sys != nil && h.sys.Available() {
		report.Database = "✅ Available"

		urlStatus := "❌ Not Set"
		if os.Getenv(config.EnvDatabaseURL) != "" {
			urlStatus = "✅ Set"
		}
		report.DatabaseURL = &urlStatus

		name := h.sys.DatabaseName()
		report.DatabaseName = &name
		report.ConnectionStatus = "Connected"

		if names, err := h.sys.Collections(r.Context()); err != nil {
			report.Database = "⚠️ Connected but Error: " + clip(err.Error(), 50)
		} else {
			if len(names) > maxCollections {
				names = names[:maxCollections]
			}
			report.Collections = names
			report.Database = "✅ Connected & Working"
		}
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

func clip(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
