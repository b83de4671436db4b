package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum"
	ecommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrNetworkNotFound = errors.New("network not found")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidBlockTag = errors.New("invalid block tag")
)

// Backend is the subset of *ethclient.Client the query services read through.
type Backend interface {
	BalanceAt(ctx context.Context, account ecommon.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// BlockTag selects the chain state a read is evaluated against. The zero
// value is "latest".
type BlockTag struct {
	number *big.Int
}

var Latest = BlockTag{}

func AtBlock(n uint64) BlockTag {
	return BlockTag{number: new(big.Int).SetUint64(n)}
}

// ParseBlockTag accepts "", "latest", a decimal height or a 0x-prefixed hex height.
func ParseBlockTag(s string) (BlockTag, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "latest") {
		return Latest, nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := hexutil.DecodeUint64("0x" + s[2:])
		if err != nil {
			return Latest, fmt.Errorf("%w: %s", ErrInvalidBlockTag, s)
		}
		return AtBlock(n), nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Latest, fmt.Errorf("%w: %s", ErrInvalidBlockTag, s)
	}
	return AtBlock(n), nil
}

// Number returns the block height for RPC calls, nil for latest.
func (t BlockTag) Number() *big.Int {
	if t.number == nil {
		return nil
	}
	return new(big.Int).Set(t.number)
}

func (t BlockTag) IsLatest() bool {
	return t.number == nil
}

func (t BlockTag) String() string {
	if t.number == nil {
		return "latest"
	}
	return t.number.String()
}

// ParseAddress validates a hex account or contract address.
func ParseAddress(s string) (ecommon.Address, error) {
	s = strings.TrimSpace(s)
	if !ecommon.IsHexAddress(s) {
		return ecommon.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return ecommon.HexToAddress(s), nil
}
