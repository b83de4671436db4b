package token

import (
	"github.com/vultisig/bridge-rewards/internal/chain"
)

func native(id chain.ID) Info {
	return Info{
		Symbol:   id.NativeSymbol(),
		Decimals: id.NativeDecimals(),
		IsNative: true,
	}
}

func erc20(symbol, address string, decimals uint8) Info {
	return Info{
		Symbol:   symbol,
		Address:  address,
		Decimals: decimals,
	}
}

// DefaultTokens is the built-in token table: the gas token of every supported
// chain plus the bridged assets.
func DefaultTokens() map[chain.ID][]Info {
	return map[chain.ID][]Info{
		chain.Ethereum: {
			native(chain.Ethereum),
			erc20("USDC", "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", 6),
			erc20("USDT", "0xdAC17F958D2ee523a2206206994597C13D831ec7", 6),
			erc20("WETH", "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", 18),
			erc20("DAI", "0x6B175474E89094C44Da98b954EedeAC495271d0F", 18),
			erc20("WBTC", "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", 8),
		},
		chain.Optimism: {
			native(chain.Optimism),
			erc20("USDC", "0x7F5c764cBc14f9669B88837ca1490cCa17c31607", 6),
			erc20("WETH", "0x4200000000000000000000000000000000000006", 18),
			erc20("DAI", "0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1", 18),
		},
		chain.Polygon: {
			native(chain.Polygon),
			erc20("USDC", "0x2791Bca1f2de4661ED88A30C99A7a9449Aa84174", 6),
			erc20("WETH", "0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619", 18),
			erc20("WMATIC", "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270", 18),
			erc20("DAI", "0x8f3Cf7ad23Cd3CaDbD9735AFf958023239c6A063", 18),
		},
		chain.Arbitrum: {
			native(chain.Arbitrum),
			erc20("USDC", "0xFF970A61A04b1cA14834A43f5dE4533eBDDB5CC8", 6),
			erc20("WETH", "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", 18),
			erc20("DAI", "0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1", 18),
		},
		chain.Base: {
			native(chain.Base),
			erc20("USDC", "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", 6),
			erc20("WETH", "0x4200000000000000000000000000000000000006", 18),
		},
		chain.Zksync: {
			native(chain.Zksync),
			erc20("USDC", "0x3355df6D4c9C3035724Fd0e3914dE96A5a83aaf4", 6),
			erc20("WETH", "0x5AEa5775959fBC2557Cc8789bC1bf90A239D9a91", 18),
		},
		chain.Boba: {
			native(chain.Boba),
		},
		chain.BscChain: {
			native(chain.BscChain),
		},
		chain.Goerli: {
			native(chain.Goerli),
		},
		chain.Mumbai: {
			native(chain.Mumbai),
		},
	}
}
