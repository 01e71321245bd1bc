package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"copro-backend/internal/config"
	"copro-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	postgresImage = "postgres"
	postgresTag   = "16-alpine"
	postgresUser  = "copro"
	postgresPass  = "copro-test"
	postgresDB    = "copro_test"
)

// One container serves every suite of the test binary
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite gives integration suites a migrated database that is emptied around each test
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use and returns a handle to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer closes the pool and purges the container. The repository
// integration TestMain calls it once the run ends.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool != nil && sharedResource != nil {
		if err := sharedPool.Purge(sharedResource); err != nil {
			logrus.WithError(err).Warn("could not purge postgres container")
		} else {
			logrus.WithField("container", sharedResource.Container.Name).Info("purged postgres container")
		}
		sharedResource = nil
		sharedPool = nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every migrated table and restarts the id sequences, so each
// partition hands out ids from 1 again.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := make([]string, 0, len(database.Models()))
	for _, m := range database.Models() {
		if named, ok := m.(interface{ TableName() string }); ok {
			tables = append(tables, fmt.Sprintf("%q", named.TableName()))
		}
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		logrus.WithError(err).Warn("could not truncate test tables")
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: postgresImage,
		Tag:        postgresTag,
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPass,
			"POSTGRES_DB=" + postgresDB,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource
	// docker reaps the container after ten minutes even if cleanup never runs
	_ = resource.Expire(600)

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", postgresUser, postgresPass, hostPort, postgresDB)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return std.PingContext(ctx)
	}); err != nil {
		return fmt.Errorf("postgres did not become ready: %w", err)
	}

	db, err := database.Initialize(dsn, &database.Options{ConnectTimeout: 30 * time.Second})
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	sharedDB = db

	sharedConfig = &config.Config{
		Environment:    "test",
		Port:           "8080",
		LogLevel:       "debug",
		DatabaseURL:    dsn,
		DBQueryTimeout: 5 * time.Second,
		JWTSecret:      "integration-test-secret",
		TokenTTL:       24 * time.Hour,
		TokenIssuer:    "copro-backend-test",
	}

	logrus.WithField("port", hostPort).Info("shared postgres ready")
	return nil
}
