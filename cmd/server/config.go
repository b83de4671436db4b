package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/vultisig/bridge-rewards/internal/api"
	"github.com/vultisig/bridge-rewards/internal/chain"
	"github.com/vultisig/bridge-rewards/internal/evm"
	"github.com/vultisig/bridge-rewards/internal/logging"
	"github.com/vultisig/bridge-rewards/internal/metrics"
)

type config struct {
	LogFormat  logging.LogFormat `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
	TokensFile string            `envconfig:"TOKENS_FILE"`
	Server     api.Config
	Metrics    metrics.Config
	Rpc        rpc
}

type rpc struct {
	Ethereum rpcItem
	Goerli   rpcItem
	Optimism rpcItem
	BSC      rpcItem
	Polygon  rpcItem
	Boba     rpcItem
	Zksync   rpcItem
	Base     rpcItem
	Arbitrum rpcItem
	Mumbai   rpcItem
}

type rpcItem struct {
	URL   string
	RPS   float64
	Burst int `default:"1"`
}

func (r rpcItem) toRPCConfig() evm.RPCConfig {
	return evm.RPCConfig{URL: r.URL, RPS: r.RPS, Burst: r.Burst}
}

// endpoints lists the chains with an RPC URL configured.
func (r rpc) endpoints() map[chain.ID]evm.RPCConfig {
	all := map[chain.ID]rpcItem{
		chain.Ethereum: r.Ethereum,
		chain.Goerli:   r.Goerli,
		chain.Optimism: r.Optimism,
		chain.BscChain: r.BSC,
		chain.Polygon:  r.Polygon,
		chain.Boba:     r.Boba,
		chain.Zksync:   r.Zksync,
		chain.Base:     r.Base,
		chain.Arbitrum: r.Arbitrum,
		chain.Mumbai:   r.Mumbai,
	}

	res := make(map[chain.ID]evm.RPCConfig)
	for id, item := range all {
		if item.URL == "" {
			continue
		}
		res[id] = item.toRPCConfig()
	}
	return res
}

// newConfig reads .env when present, then the process environment.
func newConfig() (config, error) {
	_ = godotenv.Load()

	var cfg config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return config{}, fmt.Errorf("failed to process env var: %w", err)
	}
	return cfg, nil
}
