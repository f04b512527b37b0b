// Package http contains the chi HTTP handlers of the service. Handlers are
// thin: they validate parameters, call the service layer, and render JSON
// via go-chi/render. Service semantics guarantee that dashboard requests
// never fail with upstream errors, so the handlers only surface validation
// problems.
package http
