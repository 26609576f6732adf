package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/dirview/dirview/pkg/config"
	"github.com/dirview/dirview/pkg/filesystem"
	"github.com/dirview/dirview/pkg/server"
	"github.com/dirview/dirview/pkg/version"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/robinjoseph08/golib/signals"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx := context.Background()
	log := logger.New()

	log.Info("starting dirview", logger.Data{"version": version.Version})

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	filesystemService, err := filesystem.NewService(cfg.RootDir)
	if err != nil {
		log.Err(err).Fatal("browsing root error")
	}
	log.Info("browsing root opened", logger.Data{"path": filesystemService.RootDir()})

	srv, err := server.New(cfg, filesystemService)
	if err != nil {
		log.Err(err).Fatal("server error")
	}

	graceful := signals.Setup()

	lc := net.ListenConfig{}
	listener, err := lc.Listen(ctx, "tcp", srv.Addr)
	if err != nil {
		log.Err(err).Fatal("failed to bind port")
	}

	go func() {
		log.Info("server started", logger.Data{"addr": listener.Addr().String(), "hostname": cfg.Hostname})

		err := srv.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err).Fatal("server stopped")
		}
		log.Info("server stopped")
	}()

	<-graceful
	log.Info("starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Error("server shutdown error")
	}
	log.Info("server shutdown")

	err = filesystemService.Close()
	if err != nil {
		log.Err(err).Error("browsing root close error")
	}
}
