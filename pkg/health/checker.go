// Package health exposes liveness and readiness probes over a small checker
// registry.
package health

import (
	"context"
	"time"
)

const DefaultTimeout = 5 * time.Second

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Result is the outcome of probing one dependency.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Checker probes a single named dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) Result
}
