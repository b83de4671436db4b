package evm

import (
	"context"
	"math/big"
	"testing"
	"time"

	ecommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/vultisig/bridge-rewards/internal/chain"
)

func TestParseBlockTag(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "latest"},
		{"latest", "latest"},
		{"LATEST", "latest"},
		{"17000000", "17000000"},
		{"0x10", "16"},
		{"0X10", "16"},
		{" 42 ", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, err := ParseBlockTag(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, tag.String())
		})
	}

	for _, bad := range []string{"pending", "-1", "0xzz", "1.5"} {
		_, err := ParseBlockTag(bad)
		require.ErrorIs(t, err, ErrInvalidBlockTag, bad)
	}
}

func TestBlockTag_Number(t *testing.T) {
	require.Nil(t, Latest.Number())
	require.True(t, Latest.IsLatest())

	tag := AtBlock(5)
	n := tag.Number()
	require.Equal(t, big.NewInt(5), n)

	// Number hands out copies
	n.SetInt64(9)
	require.Equal(t, big.NewInt(5), tag.Number())
	require.False(t, tag.IsLatest())
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	require.NoError(t, err)
	require.Equal(t, ecommon.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), addr)

	for _, bad := range []string{"", "0x123", "vitalik.eth", "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb4g"} {
		_, err := ParseAddress(bad)
		require.ErrorIs(t, err, ErrInvalidAddress, bad)
	}
}

func TestManager(t *testing.T) {
	m := NewManager(map[chain.ID]*Network{
		chain.Polygon:  NewNetworkWithBackend(chain.Polygon, newFakeBackend(), RPCConfig{}),
		chain.Ethereum: NewNetworkWithBackend(chain.Ethereum, newFakeBackend(), RPCConfig{}),
	})

	require.Equal(t, []chain.ID{chain.Ethereum, chain.Polygon}, m.Chains())

	net, err := m.Get(chain.Polygon)
	require.NoError(t, err)
	require.Equal(t, chain.Polygon, net.ChainID)

	_, err = m.Get(chain.Base)
	require.ErrorIs(t, err, ErrNetworkNotFound)

	// backends without a closer are fine to close
	m.Close()

	require.Empty(t, NewManager(nil).Chains())
}

func TestInstrumentedBackend_RateLimit(t *testing.T) {
	fake := newFakeBackend()
	b := newInstrumentedBackend(fake, "1", newLimiter(1, 1))

	ctx := context.Background()
	_, err := b.BalanceAt(ctx, account, nil)
	require.NoError(t, err)

	// bucket is empty now; a short deadline expires before the next token
	ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = b.BalanceAt(ctx, account, nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, 1, fake.callCount())
}

func TestNewLimiter(t *testing.T) {
	require.Nil(t, newLimiter(0, 10))

	l := newLimiter(5, 0)
	require.NotNil(t, l)
	require.Equal(t, 1, l.Burst())
}
