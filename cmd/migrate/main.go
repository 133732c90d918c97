package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"hotel-reservation/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// migrate applies migrations/*.sql declaratively: atlas diffs the desired
// schema against the live database and executes only the missing changes.
func main() {
	var (
		schemaPath = flag.String("schema", "migrations/001_initial_schema.sql", "desired schema file")
		devURL     = flag.String("dev-url", "docker://postgres/17/dev", "atlas dev database used for diffing")
		atlasBin   = flag.String("atlas", "atlas", "atlas binary")
		dryRun     = flag.Bool("dry-run", false, "print the plan without applying it")
	)
	flag.Parse()

	_ = godotenv.Load()
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		slog.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	abs, err := filepath.Abs(*schemaPath)
	if err != nil {
		slog.Error("invalid schema path", "path", *schemaPath, "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", *atlasBin)
	if err != nil {
		slog.Error("failed to initialise atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          "file://" + abs,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		slog.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	slog.Info("schema applied",
		"dry_run", *dryRun,
		"pending", len(res.Changes.Pending),
		"applied", len(res.Changes.Applied),
	)
}
