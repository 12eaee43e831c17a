package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/repostate/repostate/pkg/cli/config"
	"github.com/repostate/repostate/pkg/controller/server"
	"github.com/repostate/repostate/pkg/domain/interfaces"
	"github.com/repostate/repostate/pkg/infra"
	"github.com/repostate/repostate/pkg/repository/memory"
	"github.com/repostate/repostate/pkg/usecase"
	"github.com/repostate/repostate/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		githubApp config.GitHubApp
		firestore config.Firestore
		bigQuery  config.BigQuery
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("REPOSTATE_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			firestore.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Firestore", firestore),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghApp, err := githubApp.New()
			if err != nil {
				return err
			}

			var repoStore interfaces.RepoStore
			var commitSource interfaces.CommitSource
			var deliveryQueue interfaces.DeliveryQueue

			if firestore.Enabled() {
				fsClient, err := firestore.NewClient(ctx)
				if err != nil {
					return err
				}
				defer func() {
					if err := fsClient.Close(); err != nil {
						logging.Default().Error("failed to close firestore client", "error", err)
					}
				}()
				repoStore = fsClient
				commitSource = fsClient
				deliveryQueue = fsClient
			} else {
				logging.Default().Warn("firestore is not configured, using in-memory store; state is lost on restart")
				memStore := memory.New()
				repoStore = memStore
				commitSource = memStore
				deliveryQueue = memStore
			}

			infraOptions := []infra.Option{
				infra.WithGitHubApp(ghApp),
				infra.WithRepoStore(repoStore),
				infra.WithCommitSource(commitSource),
				infra.WithDeliveryQueue(deliveryQueue),
				infra.WithOnboarding(usecase.NewOrgOnboarder(repoStore)),
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients)
			s := server.New(uc,
				server.WithGitHubSecret(githubApp.Secret()),
				server.WithDeliveryQueue(deliveryQueue),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
