// Package store defines sentinel errors shared by its lookup and update
// methods. Handlers compare against these values to decide which HTTP
// status to answer with; any other error is an internal failure.
package store

import "errors"

// ErrOrderNotFound is returned when no order exists under the requested
// identifier. Handlers translate this into an HTTP 404 response.
var ErrOrderNotFound = errors.New("order not found")

// ErrGameNotFound is returned when no game exists under the requested
// identifier. Handlers translate this into an HTTP 404 response.
var ErrGameNotFound = errors.New("game not found")
