// Package http is the REST transport of the progress server.
//
// Routes are wired on a chi router in routes.go. Every request gets a trace
// ID, an access log line and optional gzip; everything under /api except the
// version endpoint requires a bearer token from the identity provider.
// Handlers decode JSON, take the user from the request context and delegate
// to the service layer; service errors are turned into statuses by
// errors_mapper.go.
package http
