package integration

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-testfixtures/testfixtures/v3"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"golang.org/x/crypto/bcrypt"

	"github.com/police-department/evidence-manager/api"
	"github.com/police-department/evidence-manager/infra"
	"github.com/police-department/evidence-manager/models"
	"github.com/police-department/evidence-manager/repositories"
	"github.com/police-department/evidence-manager/usecases"
	"github.com/police-department/evidence-manager/utils"
)

const (
	testDbLifetime = 120 // seconds
	testUser       = "postgres"
	testPassword   = "pwd"
	testDbName     = "evidence_manager_test"

	adminEmail      = "admin@police.test"
	adminPassword   = "admin-password"
	fixturePassword = "fixture-password"

	janeEmail  = "jane.doe@police.test"
	johnEmail  = "john.roe@police.test"
	janeCaseId = "7b3e9c2d-4f1a-4d2e-8c6b-2a1f0e9d8c01"
)

var (
	testServer *httptest.Server
	// set when the suite cannot run, the tests skip with it
	skipReason string
)

func requireIntegration(t *testing.T) {
	t.Helper()
	if skipReason != "" {
		t.Skip(skipReason)
	}
}

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		skipReason = "integration tests are skipped in short mode"
		os.Exit(m.Run())
	}

	ctx := context.Background()
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		skipReason = fmt.Sprintf("docker is not reachable: %s", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			fmt.Sprintf("POSTGRES_PASSWORD=%s", testPassword),
			fmt.Sprintf("POSTGRES_USER=%s", testUser),
			fmt.Sprintf("POSTGRES_DB=%s", testDbName),
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	if err := resource.Expire(testDbLifetime); err != nil {
		log.Fatalf("Could not set container lifetime: %s", err)
	}
	pool.MaxWait = testDbLifetime * time.Second

	hostAndPort := resource.GetHostPort("5432/tcp")
	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", testUser, testPassword, hostAndPort, testDbName)
	pgConfig := infra.PgConfig{ConnectionString: connectionString}

	logger := utils.NewLogger("text")
	ctx = utils.StoreLoggerInContext(ctx, logger)

	if err := pool.Retry(func() error {
		db, err := sql.Open("pgx", connectionString)
		if err != nil {
			return err
		}
		defer db.Close()
		return db.PingContext(ctx)
	}); err != nil {
		log.Fatalf("Could not connect to db: %s", err)
	}

	if err := repositories.NewMigrater(pgConfig).Run(ctx); err != nil {
		log.Fatalf("Could not run migrations: %s", err)
	}
	if err := loadFixtures(connectionString); err != nil {
		log.Fatalf("Could not load fixtures: %s", err)
	}

	dbPool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(), nil, pgConfig.MaxPoolConnections)
	if err != nil {
		log.Fatalf("Could not create connection pool: %s", err)
	}

	bucketDir, err := os.MkdirTemp("", "evidences")
	if err != nil {
		log.Fatalf("Could not create the evidence bucket: %s", err)
	}

	privateKey := infra.ReadParseOrGenerateSigningKey(ctx, "", "")
	repos := repositories.NewRepositories(dbPool,
		repositories.WithJwtRepository(repositories.NewJWTRepository(privateKey)),
		repositories.WithBcryptCost(bcrypt.MinCost),
	)
	testUsecases := usecases.NewUsecases(repos,
		usecases.WithEvidenceBucketUrl(fmt.Sprintf("file://%s?create_dir=true", bucketDir)),
	)

	// the administrator is the only way to create officers through the API
	seedUsecase := testUsecases.NewSeedUseCase()
	if err := seedUsecase.SeedOfficers(ctx, models.SeedConfiguration{
		CreateAdminEmail:    adminEmail,
		CreateAdminPassword: adminPassword,
	}); err != nil {
		log.Fatalf("Could not seed the administrator: %s", err)
	}

	apiConfig := api.Configuration{
		Env:                     api.EnvDevelopment,
		AppName:                 "evidence-manager",
		DefaultTimeout:          5 * time.Second,
		MaxEvidenceSizeMB:       1,
		LoginRateLimitPerMinute: 1000,
	}
	auth := utils.NewAuthentication(testUsecases.NewTokenValidator())
	router := api.InitRouterMiddlewares(ctx, apiConfig, infra.NoopTelemetry())
	server := api.NewServer(router, apiConfig, testUsecases, auth)

	testServer = httptest.NewServer(server.Handler)
	logger.InfoContext(ctx, "started server", slog.String("url", testServer.URL))

	code := m.Run()

	testServer.Close()
	dbPool.Close()
	_ = os.RemoveAll(bucketDir)

	// os.Exit skips deferred calls
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func loadFixtures(connectionString string) error {
	db, err := sql.Open("pgx", connectionString)
	if err != nil {
		return err
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(fixturePassword), bcrypt.MinCost)
	if err != nil {
		return err
	}

	fixtures, err := testfixtures.New(
		testfixtures.Database(db),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/fixtures"),
		testfixtures.Template(),
		testfixtures.TemplateData(map[string]any{"PasswordHash": string(hash)}),
	)
	if err != nil {
		return err
	}
	return fixtures.Load()
}
