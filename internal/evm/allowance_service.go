package evm

import (
	"context"
	"fmt"
	"math/big"

	ecommon "github.com/ethereum/go-ethereum/common"
)

type allowanceService struct {
	rpc Backend
}

func newAllowanceService(rpc Backend) *allowanceService {
	return &allowanceService{
		rpc: rpc,
	}
}

func (a *allowanceService) GetAllowance(
	ctx context.Context,
	tokenAddress, owner, spender ecommon.Address,
	tag BlockTag,
) (*big.Int, error) {
	out, err := callReadonly(ctx, a.rpc, tokenAddress, tag.Number(), "allowance", owner, spender)
	if err != nil {
		return nil, fmt.Errorf("failed to check allowance: %w", err)
	}

	allowance, err := unpackUint256("allowance", out)
	if err != nil {
		return nil, fmt.Errorf("failed to check allowance: %w", err)
	}
	return allowance, nil
}
