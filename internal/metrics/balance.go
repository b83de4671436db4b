package metrics

import (
	"math/big"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/vultisig/bridge-rewards/internal/chain"
)

var (
	// Last reported balance per chain and symbol, in base units
	tokenBalance = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "balances",
			Name:      "token_balance",
			Help:      "Last reported token balance in base units",
		},
		[]string{"chain_id", "symbol"},
	)

	tokenBalanceReportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "balances",
			Name:      "reports_total",
			Help:      "Total number of balance reports",
		},
		[]string{"chain_id", "symbol"},
	)
)

// BalanceMetrics is the Prometheus balance sink for the token query service
type BalanceMetrics struct{}

func NewBalanceMetrics() *BalanceMetrics {
	return &BalanceMetrics{}
}

// ReportTokenBalance records a balance read. Values beyond float64 precision
// are approximated.
func (bm *BalanceMetrics) ReportTokenBalance(chainID chain.ID, amount *big.Int, symbol string) {
	if amount == nil {
		return
	}
	value := decimal.NewFromBigInt(amount, 0).InexactFloat64()

	tokenBalance.WithLabelValues(chainID.String(), symbol).Set(value)
	tokenBalanceReportsTotal.WithLabelValues(chainID.String(), symbol).Inc()
}
