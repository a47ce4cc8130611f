// Package api defines response bodies shared by every HTTP handler.
package api

import "math"

// ErrorResponse is the body returned with every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NullableFloat maps NaN and infinities to nil so they encode as JSON null.
// encoding/json refuses to marshal NaN.
func NullableFloat(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
