package http

import (
	"context"
	"log/slog"
	"net"
	stdhttp "net/http"
	"strconv"

	"nutritrack/config"
	"nutritrack/internal/delivery"
	"nutritrack/internal/delivery/http/middleware"
	"nutritrack/internal/delivery/http/router"
	"nutritrack/internal/delivery/http/validator"
	deliverymiddleware "nutritrack/internal/delivery/middleware"
	"nutritrack/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *middleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	e := newEcho(params.Config, params.Logger, params.ErrorMiddleware)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &httpServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Config.HTTP.Port)),
		logger: params.Logger,
		echo:   e,
	}
	params.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// newEcho configures timeouts and the global middleware chain. Order matters: recovery wraps everything,
// and the request id must exist before the access log reads it.
func newEcho(cfg *config.Config, logger *slog.Logger, errorMiddleware *middleware.ErrorMiddleware) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	t := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = t.ReadTimeout
	e.Server.ReadHeaderTimeout = t.ReadHeaderTimeout
	e.Server.WriteTimeout = t.WriteTimeout
	e.Server.IdleTimeout = t.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		deliverymiddleware.NewRequestIDMiddleware(logger).Process,
		deliverymiddleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
		echomiddleware.CORS(),
	)

	return e
}

func (s *httpServer) Serve(context.Context) error {
	s.logger.Info("HTTP server listening", slog.String("addr", s.addr))

	err := s.echo.Start(s.addr)
	if errors.Is(err, stdhttp.ErrServerClosed) {
		return nil
	}

	return errors.Wrap(err, "serve http")
}

func (s *httpServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
