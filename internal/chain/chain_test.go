package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNativeSymbol(t *testing.T) {
	tests := []struct {
		chain    ID
		expected string
	}{
		{Ethereum, "ETH"},
		{Optimism, "ETH"},
		{Arbitrum, "ETH"},
		{Base, "ETH"},
		{Boba, "ETH"},
		{Polygon, "MATIC"},
		{Mumbai, "MATIC"},
		{BscChain, "BNB"},
		{ID(999999), "ETH"}, // unknown chains fall back to ETH
	}

	for _, tt := range tests {
		t.Run(tt.chain.Name(), func(t *testing.T) {
			require.Equal(t, tt.expected, tt.chain.NativeSymbol())
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("137")
	require.NoError(t, err)
	require.Equal(t, Polygon, id)

	id, err = ParseID("arbitrum")
	require.NoError(t, err)
	require.Equal(t, Arbitrum, id)

	id, err = ParseID(" 10 ")
	require.NoError(t, err)
	require.Equal(t, Optimism, id)

	_, err = ParseID("")
	require.Error(t, err)

	_, err = ParseID("0")
	require.Error(t, err)

	_, err = ParseID("nowhere")
	require.Error(t, err)
}

func TestSupportedChains(t *testing.T) {
	chains := SupportedChains()
	require.Len(t, chains, 10)

	for i, c := range chains {
		require.True(t, c.Supported(), "%s should be supported", c.Name())
		if i > 0 {
			require.Less(t, chains[i-1], c, "chains should be ordered by id")
		}
	}

	require.False(t, ID(12345).Supported())
	require.Equal(t, "chain-12345", ID(12345).Name())
}
