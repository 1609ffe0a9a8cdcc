package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/police-department/evidence-manager/api"
	"github.com/police-department/evidence-manager/infra"
	"github.com/police-department/evidence-manager/repositories"
	"github.com/police-department/evidence-manager/usecases"
	"github.com/police-department/evidence-manager/utils"
)

func RunServer() error {
	apiConfig := apiConfigFromEnv()
	pgConfig := pgConfigFromEnv()
	serverConfig := serverConfigFromEnv()
	seedConfig := seedConfigFromEnv()

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)
	signingKey := infra.ReadParseOrGenerateSigningKey(ctx, serverConfig.jwtSigningKey, serverConfig.jwtSigningKeyFile)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env, apiConfig.AppVersion)
	defer sentry.Flush(3 * time.Second)

	telemetryRessources, err := infra.InitTelemetry(ctx, telemetryConfigFromEnv())
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		telemetryRessources = infra.NoopTelemetry()
	}
	ctx = utils.StoreOpenTelemetryTracerInContext(ctx, telemetryRessources.Tracer)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		telemetryRessources.TracerProvider, pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	defer pool.Close()

	repositories := repositories.NewRepositories(
		pool,
		repositories.WithJwtRepository(repositories.NewJWTRepository(signingKey)),
	)
	uc := usecases.NewUsecases(repositories,
		usecases.WithEvidenceBucketUrl(serverConfig.evidenceBucketUrl),
		usecases.WithTokenLifetime(serverConfig.tokenLifetime),
	)

	seedUsecase := uc.NewSeedUseCase()
	if err := seedUsecase.SeedOfficers(ctx, seedConfig); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	auth := utils.NewAuthentication(uc.NewTokenValidator())
	router := api.InitRouterMiddlewares(ctx, apiConfig, telemetryRessources)
	server := api.NewServer(router, apiConfig, uc, auth)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while shutting down the server"))
		return err
	}
	if err := telemetryRessources.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while flushing traces"))
	}
	return nil
}
