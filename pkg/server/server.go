package server

import (
	"context"
	"net/http"
	"time"

	"github.com/dirview/dirview/pkg/binder"
	"github.com/dirview/dirview/pkg/config"
	"github.com/dirview/dirview/pkg/errcodes"
	"github.com/dirview/dirview/pkg/filesystem"
	"github.com/dirview/dirview/pkg/pages"
	"github.com/dirview/dirview/pkg/sorting"
	"github.com/dirview/dirview/pkg/views"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
)

func New(cfg *config.Config, filesystemService *filesystem.Service) (*http.Server, error) {
	e, err := newEcho(cfg, filesystemService)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func newEcho(cfg *config.Config, filesystemService *filesystem.Service) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b
	e.JSONSerializer = jsonSerializer{}

	r, err := views.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Renderer = r

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: cfg.RequestTimeout,
		ErrorHandler: func(err error, c echo.Context) error {
			if errors.Is(err, context.DeadlineExceeded) {
				return errcodes.RequestTimeout()
			}
			return err
		},
	}))

	health.RegisterRoutes(e)

	e.Static("/resources", cfg.ResourcesDir)

	sorter := sorting.Sorter{LegacyNumericOrder: cfg.LegacyNumericSortOrder}
	filesystem.RegisterRoutes(e, filesystemService, sorter)
	pages.RegisterRoutes(e)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	return e, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
