package evm

import (
	"fmt"
	"sort"

	"github.com/vultisig/bridge-rewards/internal/chain"
)

// Manager is the provider registry: one Network per configured chain.
type Manager struct {
	network map[chain.ID]*Network
}

func NewManager(network map[chain.ID]*Network) *Manager {
	if network == nil {
		network = make(map[chain.ID]*Network)
	}
	return &Manager{
		network: network,
	}
}

func (m *Manager) Get(chainID chain.ID) (*Network, error) {
	net, ok := m.network[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: chain %s", ErrNetworkNotFound, chainID)
	}
	return net, nil
}

// Chains returns the configured chains ordered by id.
func (m *Manager) Chains() []chain.ID {
	res := make([]chain.ID, 0, len(m.network))
	for id := range m.network {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

func (m *Manager) Close() {
	for _, net := range m.network {
		net.Close()
	}
}
