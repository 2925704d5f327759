package cmd

import (
	"context"
	"errors"
	"log"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"
	"trading-signal-api/internal/delivery/http"
	"trading-signal-api/internal/repository"
	"trading-signal-api/internal/service"
	"trading-signal-api/pkg/logger"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the trading signal API",
	RunE:  Start,
}

func Start(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Printf("Failed to create app dependency: %v", err)
		return err
	}

	repo := repository.NewRepository(appDep.cfg, appDep.log)
	services := service.NewService(
		appDep.cfg,
		appDep.log,
		repo,
		appDep.dbPinger(),
		appDep.cache,
		appDep.metrics,
	)
	httpHandler := http.NewHttpAPIHandler(ctx, appDep.echo, appDep.validator, services, appDep.log, appDep.metrics, appDep.cfg.API.CORSAllowOrigins)
	apiServer := NewHTTPServer(appDep, httpHandler)

	if err := services.HealthService.Start(ctx); err != nil {
		appDep.log.Error("Failed to start database health watchdog", logger.ErrorField(err))
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := apiServer.Start(); err != nil && !errors.Is(err, httpNet.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		appDep.log.Info("Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), appDep.cfg.API.ShutdownTimeout)
		defer cancel()
		services.HealthService.Stop(shutdownCtx)

		return apiServer.Stop()
	})

	runErr := g.Wait()
	if err := appDep.Close(); err != nil {
		log.Printf("Failed to close app dependency: %v", err)
	}
	return runErr
}
