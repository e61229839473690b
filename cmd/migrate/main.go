package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/spanner"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/domain"
	"github.com/light-bringer/ecofinds-storefront/internal/app/catalog/repo"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/committer"
	"github.com/light-bringer/ecofinds-storefront/internal/pkg/logging"
)

// Config holds migrate configuration.
type Config struct {
	ProjectID     string
	InstanceID    string
	DatabaseID    string
	MigrationsDir string
	SeedPath      string
	StrictSeed    bool
	LogMode       string
	LogLevel      string
	Emulator      bool
}

// DatabasePath returns the fully qualified database name.
func (c Config) DatabasePath() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s", c.ProjectID, c.InstanceID, c.DatabaseID)
}

// InstancePath returns the fully qualified instance name.
func (c Config) InstancePath() string {
	return fmt.Sprintf("projects/%s/instances/%s", c.ProjectID, c.InstanceID)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	_ = godotenv.Load()

	config, err := loadConfig(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(config.LogMode, config.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.Named("migrate")

	ctx := context.Background()

	// The seed is checked before any DDL so a bad file leaves the database untouched.
	var snap *domain.Snapshot
	if config.SeedPath != "" {
		if snap, err = validateSeed(ctx, config, logger); err != nil {
			return fmt.Errorf("seed %s: %w", config.SeedPath, err)
		}
	}

	admin, err := newAdmin(ctx, config, logger)
	if err != nil {
		return err
	}
	defer admin.Close()

	if err := admin.ensureInstance(ctx); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	if err := admin.ensureDatabase(ctx); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}

	client, err := spanner.NewClient(ctx, config.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	applied, err := admin.applyMigrations(ctx, client, config.MigrationsDir)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Info("migrations up to date", zap.Int("applied", applied))

	if snap != nil {
		n, err := repo.NewSeedWriter(committer.NewCommitter(client)).Write(ctx, snap)
		if err != nil {
			return fmt.Errorf("failed to import seed: %w", err)
		}
		logger.Info("seed imported",
			zap.Int("products", len(snap.Products)),
			zap.Int("categories", len(snap.Categories)),
			zap.Int("mutations", n),
		)
	}

	return nil
}

// loadConfig reads defaults from the environment and lets flags override them.
// SPANNER_DATABASE, shared with cmd/server, supplies the project, instance
// and database IDs when set.
func loadConfig(args []string) (Config, error) {
	project := getEnvOrDefault("SPANNER_PROJECT_ID", "test-project")
	inst := getEnvOrDefault("SPANNER_INSTANCE_ID", "dev-instance")
	db := getEnvOrDefault("SPANNER_DATABASE_ID", "ecofinds-db")
	if full := os.Getenv("SPANNER_DATABASE"); full != "" {
		var err error
		if project, inst, db, err = parseDatabasePath(full); err != nil {
			return Config{}, fmt.Errorf("invalid SPANNER_DATABASE: %w", err)
		}
	}

	var config Config
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.StringVar(&config.ProjectID, "project", project, "GCP project ID")
	fs.StringVar(&config.InstanceID, "instance", inst, "Spanner instance ID")
	fs.StringVar(&config.DatabaseID, "database", db, "Spanner database ID")
	fs.StringVar(&config.MigrationsDir, "migrations", "migrations", "Directory containing migration SQL files")
	fs.StringVar(&config.SeedPath, "seed", "", "Explore seed file to import after migrating (replaces catalog tables)")
	fs.BoolVar(&config.StrictSeed, "strict", false, "Refuse to import a seed with rejected records")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	config.LogMode = getEnvOrDefault("LOG_MODE", logging.ModeDevelopment)
	config.LogLevel = os.Getenv("LOG_LEVEL")
	config.Emulator = os.Getenv("SPANNER_EMULATOR_HOST") != ""
	return config, nil
}

func parseDatabasePath(path string) (project, instance, database string, err error) {
	parts := strings.Split(path, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return "", "", "", fmt.Errorf("want projects/<p>/instances/<i>/databases/<d>, got %q", path)
	}
	for _, id := range []string{parts[1], parts[3], parts[5]} {
		if id == "" {
			return "", "", "", fmt.Errorf("empty ID in %q", path)
		}
	}
	return parts[1], parts[3], parts[5], nil
}

// validateSeed loads the seed and reports its rejected records. In strict
// mode any rejection fails validation.
func validateSeed(ctx context.Context, config Config, logger *zap.Logger) (*domain.Snapshot, error) {
	snap, err := repo.NewFileSource(config.SeedPath, "").Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range snap.Rejected {
		logger.Warn("seed record rejected",
			zap.String("kind", r.Kind),
			zap.Int("index", r.Index),
			zap.String("id", r.ID),
			zap.Error(r.Err),
		)
	}
	if config.StrictSeed && len(snap.Rejected) > 0 {
		return nil, fmt.Errorf("%d record(s) rejected", len(snap.Rejected))
	}
	if len(snap.Products) == 0 && len(snap.Categories) == 0 {
		return nil, errors.New("seed contains no products or categories")
	}
	return snap, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
