// Package middleware provides composable HTTP middleware and a system for
// applying a middleware stack to a handler in registration order.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System collects middleware and applies them to a handler.
type System interface {
	Use(mw Middleware)
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &system{stack: []Middleware{}}
}

// Use appends middleware to the stack. Middleware registered first runs
// outermost: it sees the request before, and the response after, later
// registrations.
func (s *system) Use(mw Middleware) {
	s.stack = append(s.stack, mw)
}

// Apply wraps the handler with every registered middleware.
func (s *system) Apply(handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(s.stack) - 1; i >= 0; i-- {
		wrapped = s.stack[i](wrapped)
	}
	return wrapped
}
