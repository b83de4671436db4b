package evm

import (
	"context"
	"fmt"
	"math/big"

	ecommon "github.com/ethereum/go-ethereum/common"
)

type balanceService struct {
	rpc Backend
}

func newBalanceService(rpc Backend) *balanceService {
	return &balanceService{rpc: rpc}
}

func (s *balanceService) GetNativeBalance(ctx context.Context, address ecommon.Address, tag BlockTag) (*big.Int, error) {
	balance, err := s.rpc.BalanceAt(ctx, address, tag.Number())
	if err != nil {
		return nil, fmt.Errorf("failed to get native balance: %w", err)
	}
	return balance, nil
}

func (s *balanceService) GetERC20Balance(ctx context.Context, tokenAddress, ownerAddress ecommon.Address, tag BlockTag) (*big.Int, error) {
	out, err := callReadonly(ctx, s.rpc, tokenAddress, tag.Number(), "balanceOf", ownerAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to get ERC20 balance: %w", err)
	}

	balance, err := unpackUint256("balanceOf", out)
	if err != nil {
		return nil, fmt.Errorf("failed to get ERC20 balance: %w", err)
	}
	return balance, nil
}

func (s *balanceService) GetSymbol(ctx context.Context, tokenAddress ecommon.Address, tag BlockTag) (string, error) {
	out, err := callReadonly(ctx, s.rpc, tokenAddress, tag.Number(), "symbol")
	if err != nil {
		return "", fmt.Errorf("failed to get symbol for token %s: %w", tokenAddress.Hex(), err)
	}

	symbol, err := unpackSymbol(out)
	if err != nil {
		return "", fmt.Errorf("failed to get symbol for token %s: %w", tokenAddress.Hex(), err)
	}
	return symbol, nil
}
