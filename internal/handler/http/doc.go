// Package http implements the REST transport of the climate server.
//
// Routes live under /api. Tracing, access logging, request metrics,
// compression and bearer authentication are middleware; handlers decode the
// body, call the service layer and map service errors to a status code and a
// {"detail": ...} body.
package http
