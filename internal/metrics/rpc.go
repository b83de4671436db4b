package metrics

import (
	"context"
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	rpcCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "calls_total",
			Help:      "Total number of RPC calls by chain, method and outcome",
		},
		[]string{"chain_id", "method", "status"},
	)

	rpcRateLimitWaitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "rate_limit_waits_total",
			Help:      "Total number of RPC calls delayed by the local rate limiter",
		},
		[]string{"chain_id"},
	)
)

// RecordRPCCall records an RPC call with its outcome classification
func RecordRPCCall(chainID, method string, err error) {
	rpcCallsTotal.WithLabelValues(chainID, method, ClassifyRPCError(err)).Inc()
}

func RecordRateLimitWait(chainID string) {
	rpcRateLimitWaitsTotal.WithLabelValues(chainID).Inc()
}

// ClassifyRPCError maps an RPC error to a low-cardinality status label.
func ClassifyRPCError(err error) string {
	if err == nil {
		return "ok"
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}

	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "execution reverted"):
		return "reverted"
	case strings.Contains(lower, "429"), strings.Contains(lower, "too many requests"), strings.Contains(lower, "rate limit"):
		return "rate_limited"
	case strings.Contains(lower, "timeout"), strings.Contains(lower, "deadline"):
		return "timeout"
	case strings.Contains(lower, "connection refused"), strings.Contains(lower, "no such host"), strings.Contains(lower, "eof"):
		return "unavailable"
	default:
		return "error"
	}
}
