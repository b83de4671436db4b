package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vultisig/bridge-rewards/internal/api"
	"github.com/vultisig/bridge-rewards/internal/chain"
	"github.com/vultisig/bridge-rewards/internal/evm"
	"github.com/vultisig/bridge-rewards/internal/graceful"
	"github.com/vultisig/bridge-rewards/internal/logging"
	"github.com/vultisig/bridge-rewards/internal/metrics"
	"github.com/vultisig/bridge-rewards/internal/token"
)

func main() {
	cfg, err := newConfig()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	logger := logging.NewLogger(cfg.LogFormat, cfg.LogLevel)

	ctx, cancel := graceful.WithShutdown(context.Background(), logger)
	defer cancel()

	metricsServer := metrics.StartMetricsServer(
		cfg.Metrics,
		[]string{metrics.ServiceHTTP, metrics.ServiceBalances, metrics.ServiceRPC},
		logger,
	)
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if er := metricsServer.Stop(stopCtx); er != nil {
			logger.Errorf("failed to stop metrics server: %v", er)
		}
	}()

	registry := token.NewDefaultRegistry()
	if cfg.TokensFile != "" {
		err = registry.LoadFile(cfg.TokensFile)
		if err != nil {
			logger.Fatalf("failed to load tokens file: %v", err)
		}
		logger.Infof("loaded tokens from %s", cfg.TokensFile)
	}

	networks := make(map[chain.ID]*evm.Network)
	for id, rpcCfg := range cfg.Rpc.endpoints() {
		network, er := evm.NewNetwork(ctx, id, rpcCfg)
		if er != nil {
			logger.Warnf("skipping %s network: %v", id.Name(), er)
			continue
		}
		networks[id] = network
		logger.Infof("initialized %s network", id.Name())
	}
	if len(networks) == 0 {
		logger.Warn("no RPC endpoints configured, every chain query will return 404")
	}

	manager := evm.NewManager(networks)
	defer manager.Close()

	tokenService := evm.NewTokenService(
		manager,
		registry,
		evm.MultiReporter{
			metrics.NewBalanceMetrics(),
			evm.NewLogReporter(logger),
		},
		logger,
	)

	srv, err := api.NewServer(cfg.Server, tokenService, registry, logger)
	if err != nil {
		logger.Fatalf("failed to create server: %v", err)
	}

	err = srv.Start(ctx)
	if err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
