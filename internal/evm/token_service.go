package evm

import (
	"context"
	"fmt"
	"math/big"

	ecommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vultisig/bridge-rewards/internal/chain"
	"github.com/vultisig/bridge-rewards/internal/token"
)

const portfolioConcurrency = 4

// TokenLookup resolves configured tokens per chain.
type TokenLookup interface {
	TokenInfoBySymbol(chainID chain.ID, symbol string) (token.Info, error)
	Tokens(chainID chain.ID) []token.Info
}

// TokenService answers balance and allowance queries at a block tag. All
// reads go straight to the chain; nothing is cached and nothing is retried.
type TokenService struct {
	networks *Manager
	tokens   TokenLookup
	reporter BalanceReporter
	logger   *logrus.Entry
}

func NewTokenService(networks *Manager, tokens TokenLookup, reporter BalanceReporter, logger *logrus.Logger) *TokenService {
	if reporter == nil {
		reporter = MultiReporter(nil)
	}
	return &TokenService{
		networks: networks,
		tokens:   tokens,
		reporter: reporter,
		logger:   logger.WithField("pkg", "evm.TokenService"),
	}
}

// GetNativeBalance returns the gas token balance of account.
func (s *TokenService) GetNativeBalance(ctx context.Context, chainID chain.ID, account ecommon.Address, tag BlockTag) (*big.Int, error) {
	net, err := s.networks.Get(chainID)
	if err != nil {
		return nil, err
	}

	balance, err := net.Balance.GetNativeBalance(ctx, account, tag)
	if err != nil {
		return nil, err
	}

	s.report(chainID, balance, chainID.NativeSymbol())
	return balance, nil
}

// GetBalance returns the ERC-20 balance of account. The zero token address
// stands for the native asset.
func (s *TokenService) GetBalance(ctx context.Context, chainID chain.ID, account, tokenAddress ecommon.Address, tag BlockTag) (*big.Int, error) {
	if tokenAddress == (ecommon.Address{}) {
		return s.GetNativeBalance(ctx, chainID, account, tag)
	}

	net, err := s.networks.Get(chainID)
	if err != nil {
		return nil, err
	}

	symbol, err := net.Balance.GetSymbol(ctx, tokenAddress, tag)
	if err != nil {
		return nil, err
	}

	balance, err := net.Balance.GetERC20Balance(ctx, tokenAddress, account, tag)
	if err != nil {
		return nil, err
	}

	s.report(chainID, balance, symbol)
	return balance, nil
}

// GetAllowance returns how much of owner's tokenSymbol spender may move.
// Native assets have no approval step, so their allowance is 2^256-1 and no
// RPC call is made.
func (s *TokenService) GetAllowance(
	ctx context.Context,
	chainID chain.ID,
	owner, spender ecommon.Address,
	tokenSymbol string,
	tag BlockTag,
) (*big.Int, error) {
	net, err := s.networks.Get(chainID)
	if err != nil {
		return nil, err
	}

	info, err := s.tokens.TokenInfoBySymbol(chainID, tokenSymbol)
	if err != nil {
		return nil, err
	}
	if info.IsNative {
		return new(big.Int).Set(math.MaxBig256), nil
	}

	return net.Allowance.GetAllowance(ctx, ecommon.HexToAddress(info.Address), owner, spender, tag)
}

func (s *TokenService) GetDecimals(ctx context.Context, chainID chain.ID, tokenAddress ecommon.Address) (uint8, error) {
	net, err := s.networks.Get(chainID)
	if err != nil {
		return 0, err
	}
	return net.Decimals.GetDecimals(ctx, tokenAddress)
}

type Holding struct {
	Token  token.Info
	Amount *big.Int
}

// GetPortfolio reads the balance of every configured token on the chain.
// Holdings keep the registry order. The first failed read cancels the rest.
func (s *TokenService) GetPortfolio(ctx context.Context, chainID chain.ID, account ecommon.Address, tag BlockTag) ([]Holding, error) {
	if _, err := s.networks.Get(chainID); err != nil {
		return nil, err
	}

	tokens := s.tokens.Tokens(chainID)
	holdings := make([]Holding, len(tokens))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(portfolioConcurrency)
	for i, info := range tokens {
		i, info := i, info
		g.Go(func() error {
			var (
				amount *big.Int
				err    error
			)
			if info.IsNative {
				amount, err = s.GetNativeBalance(gctx, chainID, account, tag)
			} else {
				amount, err = s.GetBalance(gctx, chainID, account, ecommon.HexToAddress(info.Address), tag)
			}
			if err != nil {
				return fmt.Errorf("failed to get %s balance: %w", info.Symbol, err)
			}
			holdings[i] = Holding{Token: info, Amount: amount}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return holdings, nil
}

// report hands the sink a copy of the amount and shields the caller from
// reporter panics.
func (s *TokenService) report(chainID chain.ID, amount *big.Int, symbol string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.WithFields(logrus.Fields{
				"chainId": chainID.String(),
				"symbol":  symbol,
			}).Errorf("balance reporter panicked: %v", r)
		}
	}()
	s.reporter.ReportTokenBalance(chainID, new(big.Int).Set(amount), symbol)
}
