package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	ecommon "github.com/ethereum/go-ethereum/common"
)

type balanceKey struct {
	account ecommon.Address
	block   string
}

type fakeToken struct {
	symbol        string
	bytes32Symbol bool
	decimals      uint8
	balances      map[balanceKey]*big.Int
	allowances    map[[2]ecommon.Address]*big.Int
}

// fakeBackend answers eth_getBalance and ERC-20 eth_calls from memory.
type fakeBackend struct {
	mu       sync.Mutex
	native   map[balanceKey]*big.Int
	tokens   map[ecommon.Address]*fakeToken
	err      error
	calls    []string
	blockArg []*big.Int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		native: make(map[balanceKey]*big.Int),
		tokens: make(map[ecommon.Address]*fakeToken),
	}
}

func blockKey(n *big.Int) string {
	if n == nil {
		return "latest"
	}
	return n.String()
}

func (f *fakeBackend) setNative(account ecommon.Address, tag BlockTag, amount int64) {
	f.native[balanceKey{account, tag.String()}] = big.NewInt(amount)
}

func (f *fakeBackend) addToken(address ecommon.Address, symbol string, decimals uint8) *fakeToken {
	t := &fakeToken{
		symbol:     symbol,
		decimals:   decimals,
		balances:   make(map[balanceKey]*big.Int),
		allowances: make(map[[2]ecommon.Address]*big.Int),
	}
	f.tokens[address] = t
	return t
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeBackend) record(call string, blockNumber *big.Int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	f.blockArg = append(f.blockArg, blockNumber)
}

func (f *fakeBackend) BalanceAt(_ context.Context, account ecommon.Address, blockNumber *big.Int) (*big.Int, error) {
	f.record("eth_getBalance", blockNumber)
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.native[balanceKey{account, blockKey(blockNumber)}]; ok {
		return new(big.Int).Set(v), nil
	}
	return big.NewInt(0), nil
}

func (f *fakeBackend) CallContract(_ context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if f.err != nil {
		f.record("eth_call", blockNumber)
		return nil, f.err
	}
	if call.To == nil || len(call.Data) < 4 {
		return nil, errors.New("bad call")
	}

	tok, ok := f.tokens[*call.To]
	if !ok {
		// no code at address
		f.record("eth_call", blockNumber)
		return []byte{}, nil
	}

	method, err := erc20ABI.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	f.record(method.Name, blockNumber)

	args, err := method.Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, err
	}

	switch method.Name {
	case "symbol":
		if tok.bytes32Symbol {
			var raw [32]byte
			copy(raw[:], tok.symbol)
			return erc20Bytes32SymbolABI.Methods["symbol"].Outputs.Pack(raw)
		}
		return method.Outputs.Pack(tok.symbol)
	case "decimals":
		return method.Outputs.Pack(tok.decimals)
	case "balanceOf":
		owner := args[0].(ecommon.Address)
		v, ok := tok.balances[balanceKey{owner, blockKey(blockNumber)}]
		if !ok {
			v = big.NewInt(0)
		}
		return method.Outputs.Pack(v)
	case "allowance":
		owner := args[0].(ecommon.Address)
		spender := args[1].(ecommon.Address)
		v, ok := tok.allowances[[2]ecommon.Address{owner, spender}]
		if !ok {
			v = big.NewInt(0)
		}
		return method.Outputs.Pack(v)
	default:
		return nil, fmt.Errorf("unexpected method %s", method.Name)
	}
}
