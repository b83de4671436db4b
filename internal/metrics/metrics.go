package metrics

// Package metrics provides Prometheus metrics collection for the bridge API.
//
// This package includes:
// - HTTP request metrics (count, latency, errors)
// - Token balance reports (the balance observability sink)
// - RPC call accounting per chain
// - Metrics HTTP server on configurable port
//
// Usage:
//   import "github.com/vultisig/bridge-rewards/internal/metrics"
//
//   metricsServer := metrics.StartMetricsServer(cfg.Metrics, []string{metrics.ServiceHTTP}, logger)
//   defer metricsServer.Stop(context.Background())
//
//   e.Use(metrics.HTTPMiddleware())
