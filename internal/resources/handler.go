// Package resources provides the generic list/create HTTP surface over the
// document store. One Handler instance serves one entity collection; the
// schema type parameter carries validation, defaults, and the stored shape.
package resources

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/flamescrm/agent-platform/internal/crm"
	"github.com/flamescrm/agent-platform/internal/routes"
	"github.com/flamescrm/agent-platform/internal/store"
	"github.com/flamescrm/agent-platform/pkg/handlers"
	"github.com/flamescrm/agent-platform/pkg/listing"
	"go.mongodb.org/mongo-driver/bson"
)

// Schema is the contract a creation payload satisfies: constructor-time
// validation and conversion to the persisted document shape.
type Schema interface {
	Collection() string
	Validate() error
	Document() bson.M
}

// Handler provides list and create endpoints for a single collection.
type Handler[S Schema] struct {
	prefix string
	sys    store.System
	logger *slog.Logger
	cfg    listing.Config
}

// NewHandler creates a resource handler mounted at the given URL prefix.
func NewHandler[S Schema](prefix string, sys store.System, logger *slog.Logger, cfg listing.Config) *Handler[S] {
	var s S
	return &Handler[S]{
		prefix: prefix,
		sys:    sys,
		logger: logger.With("resource", s.Collection()),
		cfg:    cfg,
	}
}

// Routes returns the route group configuration for this resource.
func (h *Handler[S]) Routes() routes.Group {
	return routes.Group{
		Prefix: h.prefix,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
		},
	}
}

// List handles GET requests, returning up to "limit" records (default from
// configuration) with identifiers already stringified by the store layer.
func (h *Handler[S]) List(w http.ResponseWriter, r *http.Request) {
	var s S
	limit := h.cfg.LimitFromQuery(r.URL.Query())

	docs, err := h.sys.Find(r.Context(), s.Collection(), bson.M{}, limit)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	if docs == nil {
		docs = []bson.M{}
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{"items": docs})
}

// Create handles POST requests: decode, validate, insert. Validation
// failures reject with 422 before anything is persisted.
func (h *Handler[S]) Create(w http.ResponseWriter, r *http.Request) {
	var s S
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := s.Validate(); err != nil {
		var verr *crm.ValidationError
		if errors.As(err, &verr) {
			handlers.RespondValidation(w, h.logger, verr)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	id, err := h.sys.Insert(r.Context(), s.Collection(), s.Document())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	h.logger.Info("record created", "id", id)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"id": id})
}
