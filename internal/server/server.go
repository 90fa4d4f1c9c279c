package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/multierr"

	"github.com/cfranzen/modelhub"
	"github.com/cfranzen/modelhub/credentials"
	"github.com/cfranzen/modelhub/internal/server/api/middlewares"
	v1 "github.com/cfranzen/modelhub/internal/server/api/v1"
	"github.com/cfranzen/modelhub/log"
)

func Run(ctx context.Context) error {
	credFile := C.Credentials.File
	if credFile == "" {
		credFile = credentials.DefaultFilePath()
	}

	src := credentials.Chain{credentials.Env{}, credentials.File{Path: credFile}}

	build := func() (*modelhub.Registry, error) {
		opts := []modelhub.Option{modelhub.WithCredentials(src)}
		if C.GoogleUrl != "" {
			opts = append(opts, modelhub.WithGoogleUrl(C.GoogleUrl))
		}
		return modelhub.New(opts...)
	}

	reloader, err := modelhub.NewReloader(build)
	if err != nil {
		return err
	}

	if C.Credentials.Watch && credFile != "" {
		watcher, err := credentials.NewWatcher(credFile, func(keys []string) {
			if _, err := reloader.Reload(); err != nil {
				log.Errorw("registry reload fail", "keys", keys, "error", err)
				return
			}
			log.Infow("registry reloaded", "keys", keys)
		})
		if err != nil {
			return err
		}
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Errorw("credentials watch exit", "error", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewares.NewLogger().Http())
	e.Use(middlewares.NewGzip().Http())

	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	g := e.Group("/v1")
	if len(C.Tokens) > 0 {
		auth := middlewares.NewAuth(middlewares.AuthWithTokens(C.Tokens))
		g.Use(auth.Http())
	}
	v1.NewApiService(reloader).Register(g)

	ch := make(chan error, 1)
	go func() {
		defer func() {
			log.Info("api exit")
		}()

		log.Infof("api listen at %s", C.Host)
		ch <- e.Start(C.Host)
	}()

	done := ctx.Done()
	var errs error
	for {
		select {
		case err := <-ch:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs = multierr.Append(errs, err)
			}
			return errs
		case <-done:
			done = nil
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := e.Shutdown(shutdownCtx); err != nil {
				errs = multierr.Append(errs, err)
			}
			cancel()
		}
	}
}
