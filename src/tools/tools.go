//go:build tools

// Package tools pins the code generators used with go generate so that
// go mod keeps them in go.sum.
package tools

import (
	// Imported anonymously so that go mod considers them used.
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
