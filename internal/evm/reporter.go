package evm

import (
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/vultisig/bridge-rewards/internal/chain"
)

// BalanceReporter receives every balance the token service reads. It has no
// way to fail the read it observes.
type BalanceReporter interface {
	ReportTokenBalance(chainID chain.ID, amount *big.Int, symbol string)
}

type BalanceReporterFunc func(chainID chain.ID, amount *big.Int, symbol string)

func (f BalanceReporterFunc) ReportTokenBalance(chainID chain.ID, amount *big.Int, symbol string) {
	f(chainID, amount, symbol)
}

// MultiReporter fans a report out to every reporter in order.
type MultiReporter []BalanceReporter

func (m MultiReporter) ReportTokenBalance(chainID chain.ID, amount *big.Int, symbol string) {
	for _, r := range m {
		r.ReportTokenBalance(chainID, amount, symbol)
	}
}

type logReporter struct {
	logger *logrus.Logger
}

// NewLogReporter logs balance reads at debug level.
func NewLogReporter(logger *logrus.Logger) BalanceReporter {
	return &logReporter{logger: logger}
}

func (r *logReporter) ReportTokenBalance(chainID chain.ID, amount *big.Int, symbol string) {
	r.logger.WithFields(logrus.Fields{
		"chainId": chainID.String(),
		"symbol":  symbol,
		"amount":  amount.String(),
	}).Debug("token balance")
}
