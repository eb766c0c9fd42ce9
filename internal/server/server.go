/*
Package server provides the HTTP API for emojifying uploaded images.
*/
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/photoprism/emojify/internal/config"
	"github.com/photoprism/emojify/internal/emojify"
	"github.com/photoprism/emojify/internal/event"
)

var log = event.Log

// ApiUri is the base path of all API routes.
const ApiUri = "/api/v1"

// NewRouter returns a new router with all API routes registered.
func NewRouter(conf *config.Config, e *emojify.Emojifier) *gin.Engine {
	if conf.Debug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(Logger(), gin.Recovery())

	// Images are already compressed.
	router.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{ApiUri + "/emojify", ApiUri + "/emojis"}),
	))

	registerRoutes(router, conf, e)

	return router
}

// Start runs the web server until the context is canceled.
func Start(ctx context.Context, conf *config.Config) error {
	start := time.Now()

	router := NewRouter(conf, conf.Emojifier(nil))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.HttpHost(), conf.HttpPort()),
		Handler: router,
	}

	log.Infof("server: listening on %s [%s]", srv.Addr, time.Since(start))

	errCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("server: shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}
