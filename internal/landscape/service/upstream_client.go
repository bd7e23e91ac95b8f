package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/archlens/landscape-backend/internal/landscape/domain"
)

// ReviewClient retrieves the current record set from the upstream review
// service. Every fetch is a single synchronous snapshot call: no pagination,
// no retry, failures wrap into a domain.UpstreamError.
type ReviewClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewReviewClient creates a client for the review service at baseURL.
func NewReviewClient(baseURL string, rps float64, burst int) *ReviewClient {
	if rps <= 0 {
		rps = 10
	}
	if burst <= 0 {
		burst = 20
	}
	return &ReviewClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchSystems retrieves the full current set of system review records.
func (c *ReviewClient) FetchSystems(ctx context.Context) ([]domain.SystemRecord, error) {
	var records []domain.SystemRecord
	if err := c.getJSON(ctx, "/systems", "fetch_systems", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FetchCapabilityCatalog retrieves the dropdown catalog of capability tuples.
func (c *ReviewClient) FetchCapabilityCatalog(ctx context.Context) ([]domain.CapabilityTuple, error) {
	var catalog []domain.CapabilityTuple
	if err := c.getJSON(ctx, "/capabilities/catalog", "fetch_capability_catalog", &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// FetchCapabilityAssignments retrieves the per-system capability records.
func (c *ReviewClient) FetchCapabilityAssignments(ctx context.Context) ([]domain.CapabilityAssignment, error) {
	var assignments []domain.CapabilityAssignment
	if err := c.getJSON(ctx, "/capabilities/assignments", "fetch_capability_assignments", &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (c *ReviewClient) getJSON(ctx context.Context, path, op string, out any) error {
	logger := NewLogger(ctx)
	if err := c.limiter.Wait(ctx); err != nil {
		return &domain.UpstreamError{Op: op, Err: err}
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		logger.Error(op, err)
		return &domain.UpstreamError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := c.client.Do(req)
	duration := time.Since(start)
	if err != nil {
		logger.Error(op, err)
		recordUpstreamCall(duration, err)
		return &domain.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("status %d", resp.StatusCode)
		logger.Warnf(op, "upstream returned status %d", resp.StatusCode)
		recordUpstreamCall(duration, statusErr)
		return &domain.UpstreamError{Op: op, Err: statusErr}
	}
	recordUpstreamCall(duration, nil)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error(op, err)
		return &domain.UpstreamError{Op: op, Err: fmt.Errorf("decode JSON: %w", err)}
	}
	return nil
}
