package evm

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	ecommon "github.com/ethereum/go-ethereum/common"
)

// Read-only slice of EIP-20.
const erc20ABIJSON = `[
{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// Pre-standard tokens (MKR, SAI) return symbol() as bytes32.
const erc20Bytes32SymbolABIJSON = `[
{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"bytes32"}],"stateMutability":"view","type":"function"}
]`

var (
	erc20ABI              = mustParseABI(erc20ABIJSON)
	erc20Bytes32SymbolABI = mustParseABI(erc20Bytes32SymbolABIJSON)
)

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("invalid erc20 abi: %v", err))
	}
	return parsed
}

// callReadonly packs method, runs eth_call against token at blockNumber and
// returns the raw output.
func callReadonly(
	ctx context.Context,
	rpc Backend,
	token ecommon.Address,
	blockNumber *big.Int,
	method string,
	args ...interface{},
) ([]byte, error) {
	data, err := erc20ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	out, err := rpc.CallContract(ctx, ethereum.CallMsg{
		To:   &token,
		Data: data,
	}, blockNumber)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func unpackUint256(method string, out []byte) (*big.Int, error) {
	res, err := erc20ABI.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	value, ok := res[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("failed to unpack %s: unexpected type %T", method, res[0])
	}
	return value, nil
}

func unpackSymbol(out []byte) (string, error) {
	if res, err := erc20ABI.Unpack("symbol", out); err == nil {
		if s, ok := res[0].(string); ok {
			return s, nil
		}
	}

	res, err := erc20Bytes32SymbolABI.Unpack("symbol", out)
	if err != nil {
		return "", fmt.Errorf("failed to unpack symbol: %w", err)
	}
	raw, ok := res[0].([32]byte)
	if !ok {
		return "", fmt.Errorf("failed to unpack symbol: unexpected type %T", res[0])
	}
	return string(bytes.TrimRight(raw[:], "\x00")), nil
}
