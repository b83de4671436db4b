package util

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals int
		expected string
	}{
		{"whole usdc", "10", 6, "10000000"},
		{"fraction usdc", "0.5", 6, "500000"},
		{"percent", "12.5", 18, "12500000000000000000"},
		{"leading dot", ".25", 2, "25"},
		{"trailing dot", "7.", 2, "700"},
		{"truncates extra digits", "1.1234567", 6, "1123456"},
		{"zero decimals", "42.9", 0, "42"},
		{"zero", "0", 18, "0"},
		{"negative", "-1.5", 1, "-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToBaseUnits(tt.amount, tt.decimals)
			require.NoError(t, err)
			require.Equal(t, tt.expected, result.String())
		})
	}
}

func TestToBaseUnits_Invalid(t *testing.T) {
	for _, amount := range []string{"", " ", ".", "1.2.3", "abc", "1e5", "1,5", "--1"} {
		t.Run(amount, func(t *testing.T) {
			_, err := ToBaseUnits(amount, 6)
			require.ErrorIs(t, err, ErrInvalidAmount)
		})
	}

	_, err := ToBaseUnits("1", -1)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestFromBaseUnits(t *testing.T) {
	tests := []struct {
		amount   *big.Int
		decimals int
		expected string
	}{
		{big.NewInt(10000000), 6, "10"},
		{big.NewInt(500000), 6, "0.5"},
		{big.NewInt(1), 18, "0.000000000000000001"},
		{big.NewInt(123456789), 4, "12345.6789"},
		{big.NewInt(0), 6, "0"},
		{big.NewInt(42), 0, "42"},
		{big.NewInt(-15), 1, "-1.5"},
		{nil, 6, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, FromBaseUnits(tt.amount, tt.decimals))
		})
	}
}

func TestBaseUnitsRoundTrip(t *testing.T) {
	for _, s := range []string{"1", "0.000001", "123.456", "999999999.999999"} {
		v, err := ToBaseUnits(s, 6)
		require.NoError(t, err)
		require.Equal(t, s, FromBaseUnits(v, 6))
	}
}

func TestIsNativeToken(t *testing.T) {
	require.True(t, IsNativeToken(""))
	require.True(t, IsNativeToken("NATIVE"))
	require.False(t, IsNativeToken("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"))
}
