// Where: internal/health/health.go
// What: HTTP health endpoint probing.
// Why: Report per-service health without one failure hiding another.
package health

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Endpoint names one HTTP health URL to probe.
type Endpoint struct {
	Name string
	URL  string
}

// Result holds the outcome of probing one endpoint. Err is set when the
// endpoint was unreachable or timed out; StatusCode is only meaningful
// when Err is nil.
type Result struct {
	Endpoint   Endpoint
	StatusCode int
	Err        error
}

// Healthy reports whether the probe succeeded with HTTP 200.
func (r Result) Healthy() bool {
	return r.Err == nil && r.StatusCode == http.StatusOK
}

// Checker probes HTTP health endpoints.
type Checker struct {
	Client *http.Client
}

// NewChecker returns a Checker with a short per-request timeout so a
// hung service cannot stall the whole report.
func NewChecker() Checker {
	return Checker{
		Client: &http.Client{Timeout: 2 * time.Second},
	}
}

// Check probes every endpoint independently. A failure on one endpoint
// never suppresses the result of another; the returned slice always has
// one Result per input Endpoint, in order.
func (c Checker) Check(ctx context.Context, endpoints []Endpoint) []Result {
	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Second}
	}

	results := make([]Result, 0, len(endpoints))
	for _, ep := range endpoints {
		results = append(results, probe(ctx, client, ep))
	}
	return results
}

func probe(ctx context.Context, client *http.Client, ep Endpoint) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.URL, nil)
	if err != nil {
		return Result{Endpoint: ep, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Result{Endpoint: ep, Err: fmt.Errorf("unreachable: %w", err)}
	}
	_ = resp.Body.Close()
	return Result{Endpoint: ep, StatusCode: resp.StatusCode}
}

// AllHealthy reports whether every result is healthy.
func AllHealthy(results []Result) bool {
	for _, r := range results {
		if !r.Healthy() {
			return false
		}
	}
	return true
}
