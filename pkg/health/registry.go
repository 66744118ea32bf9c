package health

import (
	"context"
	"sync"
)

// Registry fans a readiness probe out over its checkers.
type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

type CheckResult struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// CheckAll runs every checker concurrently and reports down if any single
// check is down. An empty registry is always up.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	if len(r.checkers) == 0 {
		return ReadinessResponse{Status: StatusUp}
	}

	results := make([]CheckResult, len(r.checkers))

	var wg sync.WaitGroup
	for i, checker := range r.checkers {
		wg.Add(1)
		go func(idx int, c Checker) {
			defer wg.Done()

			res := c.Check(ctx)
			results[idx] = CheckResult{Name: c.Name(), Status: res.Status, Message: res.Message}
		}(i, checker)
	}
	wg.Wait()

	response := ReadinessResponse{Status: StatusUp, Checks: results}
	for _, res := range results {
		if res.Status == StatusDown {
			response.Status = StatusDown
			break
		}
	}
	return response
}
