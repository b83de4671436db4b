package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

const namespace = "bridge"

// Service names accepted by RegisterMetrics
const (
	ServiceHTTP     = "http"
	ServiceBalances = "balances"
	ServiceRPC      = "rpc"
)

// RegisterMetrics registers metrics for the specified services
func RegisterMetrics(services []string, logger *logrus.Logger) {
	registerMetrics(prometheus.DefaultRegisterer, services, logger)
}

func registerMetrics(reg prometheus.Registerer, services []string, logger *logrus.Logger) {
	// Always register Go and process metrics
	registerIfNotExists(reg, collectors.NewGoCollector(), "go_collector", logger)
	registerIfNotExists(reg, collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), "process_collector", logger)

	for _, service := range services {
		switch service {
		case ServiceHTTP:
			registerIfNotExists(reg, httpRequestsTotal, "http_requests_total", logger)
			registerIfNotExists(reg, httpRequestDuration, "http_request_duration", logger)
			registerIfNotExists(reg, httpErrorsTotal, "http_errors_total", logger)
		case ServiceBalances:
			registerIfNotExists(reg, tokenBalance, "token_balance", logger)
			registerIfNotExists(reg, tokenBalanceReportsTotal, "token_balance_reports_total", logger)
		case ServiceRPC:
			registerIfNotExists(reg, rpcCallsTotal, "rpc_calls_total", logger)
			registerIfNotExists(reg, rpcRateLimitWaitsTotal, "rpc_rate_limit_waits_total", logger)
		default:
			logger.Warnf("Unknown service type for metrics registration: %s", service)
		}
	}
}

// registerIfNotExists registers a collector if it's not already registered
func registerIfNotExists(reg prometheus.Registerer, collector prometheus.Collector, name string, logger *logrus.Logger) {
	if err := reg.Register(collector); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegErr) {
			logger.Debugf("%s already registered", name)
		} else {
			logger.Errorf("Failed to register %s: %v", name, err)
		}
	}
}
