package main

import (
	"net/http"

	"github.com/flamescrm/agent-platform/internal/chat"
	"github.com/flamescrm/agent-platform/internal/crm"
	"github.com/flamescrm/agent-platform/internal/diagnostics"
	"github.com/flamescrm/agent-platform/internal/resources"
	"github.com/flamescrm/agent-platform/internal/routes"
)

// routes builds the full HTTP handler: diagnostic and chat endpoints plus a
// list/create pair per CRM collection, wrapped in the middleware stack.
func (app *Application) routes() http.Handler {
	r := routes.New(app.logger)

	diagHandler := diagnostics.NewHandler(app.store, app.logger)
	r.RegisterGroup(diagHandler.Routes())

	chatHandler := chat.NewHandler(app.store, app.logger)
	r.RegisterGroup(chatHandler.Routes())

	cfg := app.config.Listing
	r.RegisterGroup(resources.NewHandler[crm.Agent]("/api/agents", app.store, app.logger, cfg).Routes())
	r.RegisterGroup(resources.NewHandler[crm.Contact]("/api/contacts", app.store, app.logger, cfg).Routes())
	r.RegisterGroup(resources.NewHandler[crm.Company]("/api/companies", app.store, app.logger, cfg).Routes())
	r.RegisterGroup(resources.NewHandler[crm.Deal]("/api/deals", app.store, app.logger, cfg).Routes())
	r.RegisterGroup(resources.NewHandler[crm.Task]("/api/tasks", app.store, app.logger, cfg).Routes())
	r.RegisterGroup(resources.NewHandler[crm.Conversation]("/api/conversations", app.store, app.logger, cfg).Routes())
	r.RegisterGroup(resources.NewHandler[crm.Message]("/api/messages", app.store, app.logger, cfg).Routes())
	r.RegisterGroup(resources.NewHandler[crm.Knowledge]("/api/knowledge", app.store, app.logger, cfg).Routes())

	return app.buildMiddleware().Apply(r.Build())
}
