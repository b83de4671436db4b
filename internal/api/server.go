package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/vultisig/bridge-rewards/internal/evm"
	"github.com/vultisig/bridge-rewards/internal/metrics"
	"github.com/vultisig/bridge-rewards/internal/pagination"
)

type Config struct {
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
	// Rows per page on paginated endpoints
	PageSize int `envconfig:"SERVER_PAGE_SIZE" default:"25"`
	// Page-number buttons returned when the request does not ask for a count
	MaxNavigationCount int           `envconfig:"SERVER_MAX_NAVIGATION_COUNT" default:"5"`
	RequestTimeout     time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"15s"`
}

type Server struct {
	cfg       Config
	e         *echo.Echo
	tokens    *evm.TokenService
	registry  evm.TokenLookup
	paginator *pagination.Paginator
	logger    *logrus.Logger
}

func NewServer(cfg Config, tokens *evm.TokenService, registry evm.TokenLookup, logger *logrus.Logger) (*Server, error) {
	paginator, err := pagination.New(cfg.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create paginator: %w", err)
	}
	if cfg.MaxNavigationCount < 1 {
		cfg.MaxNavigationCount = pagination.DefaultMaxNavigationCount
	}

	s := &Server{
		cfg:       cfg,
		e:         echo.New(),
		tokens:    tokens,
		registry:  registry,
		paginator: paginator,
		logger:    logger,
	}
	s.e.HideBanner = true
	s.e.HidePort = true
	s.e.HTTPErrorHandler = s.errorHandler

	s.e.Use(metrics.HTTPMiddleware())
	s.e.Use(middleware.Recover())
	if cfg.RequestTimeout > 0 {
		s.e.Use(s.timeout(cfg.RequestTimeout))
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.e.GET("/healthz", s.health)
	s.e.GET("/remove-amount", s.removeAmount)

	g := s.e.Group("/chains/:chainId")
	g.GET("/balances/:account", s.balance)
	g.GET("/allowances", s.allowance)
	g.GET("/tokens", s.listTokens)
	g.GET("/portfolio/:account", s.portfolio)
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("api server listening on %s", addr)
		errCh <- s.e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// timeout bounds every request context so slow RPC reads cannot pile up.
func (s *Server) timeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
