//go:build tools

// Package tools tracks tool dependencies run through go generate (mockgen).
package toneanalyzer

import (
	_ "go.uber.org/mock/mockgen"
)
