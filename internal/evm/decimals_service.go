package evm

import (
	"context"
	"fmt"

	ecommon "github.com/ethereum/go-ethereum/common"
)

type decimalsService struct {
	rpc Backend
}

func newDecimalsService(rpc Backend) *decimalsService {
	return &decimalsService{
		rpc: rpc,
	}
}

// GetDecimals fetches the decimals for an ERC20 token
func (d *decimalsService) GetDecimals(ctx context.Context, tokenAddress ecommon.Address) (uint8, error) {
	var zero ecommon.Address
	if tokenAddress == zero {
		return 0, fmt.Errorf("%w: token address cannot be zero", ErrInvalidAddress)
	}

	out, err := callReadonly(ctx, d.rpc, tokenAddress, nil, "decimals")
	if err != nil {
		return 0, fmt.Errorf("failed to get decimals for token %s: %w", tokenAddress.Hex(), err)
	}

	res, err := erc20ABI.Unpack("decimals", out)
	if err != nil {
		return 0, fmt.Errorf("failed to get decimals for token %s: %w", tokenAddress.Hex(), err)
	}
	decimals, ok := res[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("failed to get decimals for token %s: unexpected type %T", tokenAddress.Hex(), res[0])
	}

	return decimals, nil
}
