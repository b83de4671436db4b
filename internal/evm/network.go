package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/vultisig/bridge-rewards/internal/chain"
)

// RPCConfig describes one chain's JSON-RPC endpoint. RPS <= 0 disables the
// local rate limiter.
type RPCConfig struct {
	URL   string
	RPS   float64
	Burst int
}

type Network struct {
	ChainID   chain.ID
	Balance   *balanceService
	Allowance *allowanceService
	Decimals  *decimalsService
	close     func()
}

// NewNetwork dials rpcConfig.URL and checks the endpoint serves chainID.
func NewNetwork(ctx context.Context, chainID chain.ID, rpcConfig RPCConfig) (*Network, error) {
	rpc, err := ethclient.DialContext(ctx, rpcConfig.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	remoteID, err := rpc.ChainID(ctx)
	if err != nil {
		rpc.Close()
		return nil, fmt.Errorf("failed to get chain id from RPC: %w", err)
	}
	if !remoteID.IsUint64() || chain.ID(remoteID.Uint64()) != chainID {
		rpc.Close()
		return nil, fmt.Errorf("RPC chain id mismatch: expected %s, got %s", chainID, remoteID)
	}

	net := NewNetworkWithBackend(chainID, rpc, rpcConfig)
	net.close = rpc.Close
	return net, nil
}

// NewNetworkWithBackend builds the services over an existing backend.
func NewNetworkWithBackend(chainID chain.ID, backend Backend, rpcConfig RPCConfig) *Network {
	rpc := newInstrumentedBackend(backend, chainID.String(), newLimiter(rpcConfig.RPS, rpcConfig.Burst))

	return &Network{
		ChainID:   chainID,
		Balance:   newBalanceService(rpc),
		Allowance: newAllowanceService(rpc),
		Decimals:  newDecimalsService(rpc),
	}
}

func (n *Network) Close() {
	if n.close != nil {
		n.close()
	}
}
