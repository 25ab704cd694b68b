// Package api contains the HTTP handlers for the task endpoints and
// the mapping from internal errors to HTTP status codes.
package api
