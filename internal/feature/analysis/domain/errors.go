// Package domain はanalysisフィーチャーのドメインエラーを定義します。
package domain

import "errors"

// ErrInsufficientData is returned when a series has fewer than two points,
// so no return can be computed.
var ErrInsufficientData = errors.New("insufficient data")
