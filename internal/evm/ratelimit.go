package evm

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	ecommon "github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/vultisig/bridge-rewards/internal/metrics"
)

// instrumentedBackend throttles calls through an optional token bucket and
// records every call outcome. It never retries.
type instrumentedBackend struct {
	next    Backend
	chainID string
	limiter *rate.Limiter
}

func newInstrumentedBackend(next Backend, chainID string, limiter *rate.Limiter) *instrumentedBackend {
	return &instrumentedBackend{
		next:    next,
		chainID: chainID,
		limiter: limiter,
	}
}

func (b *instrumentedBackend) BalanceAt(ctx context.Context, account ecommon.Address, blockNumber *big.Int) (*big.Int, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	balance, err := b.next.BalanceAt(ctx, account, blockNumber)
	metrics.RecordRPCCall(b.chainID, "eth_getBalance", err)
	return balance, err
}

func (b *instrumentedBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	out, err := b.next.CallContract(ctx, call, blockNumber)
	metrics.RecordRPCCall(b.chainID, "eth_call", err)
	return out, err
}

// wait consumes exactly one token, or returns when ctx is done.
func (b *instrumentedBackend) wait(ctx context.Context) error {
	if b.limiter == nil {
		return nil
	}

	r := b.limiter.Reserve()
	if !r.OK() {
		return fmt.Errorf("rate: cannot reserve token")
	}
	delay := r.Delay()
	if delay <= 0 {
		return nil
	}

	metrics.RecordRateLimitWait(b.chainID)
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}

func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
