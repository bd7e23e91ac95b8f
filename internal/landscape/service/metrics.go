package service

import (
	"sync/atomic"
	"time"
)

// Metrics tracks upstream and diagram operation counters.
type Metrics struct {
	upstreamCalls   int64
	upstreamErrors  int64
	upstreamLatency int64 // total latency in nanoseconds
	systemDiagrams  int64
	pathSearches    int64
	landscapeViews  int64
	capabilityTrees int64
}

var globalMetrics = &Metrics{}

// MetricsSnapshot is the JSON shape of the metrics endpoint.
type MetricsSnapshot struct {
	UpstreamCalls     int64 `json:"upstream_calls"`
	UpstreamErrors    int64 `json:"upstream_errors"`
	UpstreamLatencyMs int64 `json:"upstream_latency_ms"`
	SystemDiagrams    int64 `json:"system_diagrams"`
	PathSearches      int64 `json:"path_searches"`
	LandscapeViews    int64 `json:"landscape_views"`
	CapabilityTrees   int64 `json:"capability_trees"`
}

// GetMetrics returns the current counter values.
func GetMetrics() MetricsSnapshot {
	return MetricsSnapshot{
		UpstreamCalls:     atomic.LoadInt64(&globalMetrics.upstreamCalls),
		UpstreamErrors:    atomic.LoadInt64(&globalMetrics.upstreamErrors),
		UpstreamLatencyMs: atomic.LoadInt64(&globalMetrics.upstreamLatency) / int64(time.Millisecond),
		SystemDiagrams:    atomic.LoadInt64(&globalMetrics.systemDiagrams),
		PathSearches:      atomic.LoadInt64(&globalMetrics.pathSearches),
		LandscapeViews:    atomic.LoadInt64(&globalMetrics.landscapeViews),
		CapabilityTrees:   atomic.LoadInt64(&globalMetrics.capabilityTrees),
	}
}

// ResetMetrics zeroes all counters (useful for testing).
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.upstreamCalls, 0)
	atomic.StoreInt64(&globalMetrics.upstreamErrors, 0)
	atomic.StoreInt64(&globalMetrics.upstreamLatency, 0)
	atomic.StoreInt64(&globalMetrics.systemDiagrams, 0)
	atomic.StoreInt64(&globalMetrics.pathSearches, 0)
	atomic.StoreInt64(&globalMetrics.landscapeViews, 0)
	atomic.StoreInt64(&globalMetrics.capabilityTrees, 0)
}

func recordUpstreamCall(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.upstreamCalls, 1)
	atomic.AddInt64(&globalMetrics.upstreamLatency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.upstreamErrors, 1)
	}
}

func recordSystemDiagram() { atomic.AddInt64(&globalMetrics.systemDiagrams, 1) }

func recordPathSearch() { atomic.AddInt64(&globalMetrics.pathSearches, 1) }

func recordLandscapeView() { atomic.AddInt64(&globalMetrics.landscapeViews, 1) }

func recordCapabilityTree() { atomic.AddInt64(&globalMetrics.capabilityTrees, 1) }
