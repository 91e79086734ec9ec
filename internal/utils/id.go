// Package utils holds small helpers with no dependencies on the rest of
// the application.
package utils

import "math/rand/v2"

const (
	orderIDLength   = 6
	orderIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// NewOrderID produces a 6-character identifier drawn uniformly from
// lowercase letters and digits. It does not check the result against
// existing identifiers; the collection is small enough that the caller
// accepts the collision odds of a 36^6 space.
func NewOrderID() string {
	b := make([]byte, orderIDLength)
	for i := range b {
		b[i] = orderIDAlphabet[rand.IntN(len(orderIDAlphabet))]
	}
	return string(b)
}
