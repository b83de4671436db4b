package api

import (
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vultisig/bridge-rewards/internal/chain"
	"github.com/vultisig/bridge-rewards/internal/evm"
	"github.com/vultisig/bridge-rewards/internal/pagination"
	"github.com/vultisig/bridge-rewards/internal/token"
	"github.com/vultisig/bridge-rewards/internal/util"
)

type balanceResponse struct {
	ChainID uint64 `json:"chainId"`
	Account string `json:"account"`
	Token   string `json:"token,omitempty"`
	Block   string `json:"block"`
	Amount  string `json:"amount"`
}

type allowanceResponse struct {
	ChainID uint64 `json:"chainId"`
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Symbol  string `json:"symbol"`
	Block   string `json:"block"`
	Amount  string `json:"amount"`
}

type tokensResponse struct {
	ChainID    uint64           `json:"chainId"`
	Tokens     []token.Info     `json:"tokens"`
	Pagination pagination.State `json:"pagination"`
}

type holdingResponse struct {
	token.Info
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
}

type portfolioResponse struct {
	ChainID    uint64            `json:"chainId"`
	Account    string            `json:"account"`
	Block      string            `json:"block"`
	Holdings   []holdingResponse `json:"holdings"`
	Pagination pagination.State  `json:"pagination"`
}

type removeAmountResponse struct {
	Percent  string `json:"percent"`
	Position string `json:"position"`
	Decimals int    `json:"decimals"`
	Amount   string `json:"amount"`
}

// balance serves the native balance, or the ERC-20 balance when ?token= is set.
func (s *Server) balance(c echo.Context) error {
	chainID, err := parseChain(c)
	if err != nil {
		return err
	}
	account, err := evm.ParseAddress(c.Param("account"))
	if err != nil {
		return badRequest(err)
	}
	tag, err := evm.ParseBlockTag(c.QueryParam("block"))
	if err != nil {
		return badRequest(err)
	}

	ctx := c.Request().Context()
	res := balanceResponse{
		ChainID: uint64(chainID),
		Account: account.Hex(),
		Block:   tag.String(),
	}

	var amount *big.Int
	if tokenParam := c.QueryParam("token"); !util.IsNativeToken(tokenParam) {
		tokenAddress, err := evm.ParseAddress(tokenParam)
		if err != nil {
			return badRequest(err)
		}
		res.Token = tokenAddress.Hex()
		amount, err = s.tokens.GetBalance(ctx, chainID, account, tokenAddress, tag)
		if err != nil {
			return err
		}
	} else {
		amount, err = s.tokens.GetNativeBalance(ctx, chainID, account, tag)
		if err != nil {
			return err
		}
	}

	res.Amount = amount.String()
	return c.JSON(http.StatusOK, res)
}

func (s *Server) allowance(c echo.Context) error {
	chainID, err := parseChain(c)
	if err != nil {
		return err
	}
	owner, err := evm.ParseAddress(c.QueryParam("owner"))
	if err != nil {
		return badRequest(err)
	}
	spender, err := evm.ParseAddress(c.QueryParam("spender"))
	if err != nil {
		return badRequest(err)
	}
	symbol := c.QueryParam("symbol")
	if symbol == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "symbol is required")
	}
	tag, err := evm.ParseBlockTag(c.QueryParam("block"))
	if err != nil {
		return badRequest(err)
	}

	amount, err := s.tokens.GetAllowance(c.Request().Context(), chainID, owner, spender, symbol, tag)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, allowanceResponse{
		ChainID: uint64(chainID),
		Owner:   owner.Hex(),
		Spender: spender.Hex(),
		Symbol:  symbol,
		Block:   tag.String(),
		Amount:  amount.String(),
	})
}

func (s *Server) listTokens(c echo.Context) error {
	chainID, err := parseChain(c)
	if err != nil {
		return err
	}
	params, err := s.pageParams(c)
	if err != nil {
		return err
	}

	tokens := s.registry.Tokens(chainID)
	if len(tokens) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("no tokens configured for chain %s", chainID))
	}

	params.ElementCount = len(tokens)
	state := s.paginator.Paginate(params)

	return c.JSON(http.StatusOK, tokensResponse{
		ChainID:    uint64(chainID),
		Tokens:     pagination.Slice(tokens, state),
		Pagination: state,
	})
}

func (s *Server) portfolio(c echo.Context) error {
	chainID, err := parseChain(c)
	if err != nil {
		return err
	}
	account, err := evm.ParseAddress(c.Param("account"))
	if err != nil {
		return badRequest(err)
	}
	tag, err := evm.ParseBlockTag(c.QueryParam("block"))
	if err != nil {
		return badRequest(err)
	}
	params, err := s.pageParams(c)
	if err != nil {
		return err
	}

	holdings, err := s.tokens.GetPortfolio(c.Request().Context(), chainID, account, tag)
	if err != nil {
		return err
	}

	params.ElementCount = len(holdings)
	state := s.paginator.Paginate(params)

	page := pagination.Slice(holdings, state)
	rows := make([]holdingResponse, 0, len(page))
	for _, h := range page {
		rows = append(rows, holdingResponse{
			Info:      h.Token,
			Amount:    h.Amount.String(),
			Formatted: util.FromBaseUnits(h.Amount, int(h.Token.Decimals)),
		})
	}

	return c.JSON(http.StatusOK, portfolioResponse{
		ChainID:    uint64(chainID),
		Account:    account.Hex(),
		Block:      tag.String(),
		Holdings:   rows,
		Pagination: state,
	})
}

// removeAmount takes decimals directly, or reads them from ?chainId=&token=.
func (s *Server) removeAmount(c echo.Context) error {
	percent := c.QueryParam("percent")
	if percent == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "percent is required")
	}

	position, ok := new(big.Int).SetString(c.QueryParam("position"), 10)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "position must be an integer in base units")
	}

	decimals, err := s.resolveDecimals(c)
	if err != nil {
		return err
	}

	amount, err := util.CalculateRemoveAmount(percent, position, decimals)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, removeAmountResponse{
		Percent:  percent,
		Position: position.String(),
		Decimals: decimals,
		Amount:   amount,
	})
}

func (s *Server) resolveDecimals(c echo.Context) (int, error) {
	if raw := c.QueryParam("decimals"); raw != "" {
		decimals, err := strconv.Atoi(raw)
		if err != nil || decimals < 0 || decimals > 255 {
			return 0, echo.NewHTTPError(http.StatusBadRequest, "decimals must be an integer between 0 and 255")
		}
		return decimals, nil
	}

	if c.QueryParam("chainId") == "" || c.QueryParam("token") == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "decimals or chainId and token are required")
	}
	chainID, err := chain.ParseID(c.QueryParam("chainId"))
	if err != nil {
		return 0, badRequest(err)
	}
	tokenAddress, err := evm.ParseAddress(c.QueryParam("token"))
	if err != nil {
		return 0, badRequest(err)
	}

	decimals, err := s.tokens.GetDecimals(c.Request().Context(), chainID, tokenAddress)
	if err != nil {
		return 0, err
	}
	return int(decimals), nil
}

func (s *Server) pageParams(c echo.Context) (pagination.Params, error) {
	params := pagination.Params{
		CurrentPage:        1,
		MaxNavigationCount: s.cfg.MaxNavigationCount,
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return params, echo.NewHTTPError(http.StatusBadRequest, "page must be an integer")
		}
		params.CurrentPage = page
	}
	if raw := c.QueryParam("nav"); raw != "" {
		nav, err := strconv.Atoi(raw)
		if err != nil || nav < 1 {
			return params, echo.NewHTTPError(http.StatusBadRequest, "nav must be a positive integer")
		}
		params.MaxNavigationCount = nav
	}
	return params, nil
}

func parseChain(c echo.Context) (chain.ID, error) {
	chainID, err := chain.ParseID(c.Param("chainId"))
	if err != nil {
		return 0, badRequest(err)
	}
	return chainID, nil
}
