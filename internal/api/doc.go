// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the service dispatcher, translating HTTP requests into commands and
// command results into status codes and JSON bodies.
package api
