package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/vultisig/bridge-rewards/internal/evm"
	"github.com/vultisig/bridge-rewards/internal/token"
	"github.com/vultisig/bridge-rewards/internal/util"
)

type errorResponse struct {
	Message string `json:"message"`
}

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}

// statusFor maps service errors onto HTTP codes. Anything unrecognised came
// from the RPC provider.
func statusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, evm.ErrInvalidAddress),
		errors.Is(err, evm.ErrInvalidBlockTag),
		errors.Is(err, util.ErrInvalidAmount),
		errors.Is(err, util.ErrPercentOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, evm.ErrNetworkNotFound),
		errors.Is(err, token.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := statusFor(err)
	msg := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			msg = m
		}
	}

	l := s.logger.WithFields(logrus.Fields{
		"method": c.Request().Method,
		"path":   c.Path(),
		"status": code,
	})
	if code >= http.StatusInternalServerError {
		l.WithError(err).Error("request failed")
	} else {
		l.WithError(err).Debug("request rejected")
	}

	if jsonErr := c.JSON(code, errorResponse{Message: msg}); jsonErr != nil {
		s.logger.WithError(jsonErr).Error("failed to write error response")
	}
}
