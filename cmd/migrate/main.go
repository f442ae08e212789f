// Command migrate applies the SQL files under migrations/ with the Atlas CLI.
//
// The directory must carry an atlas.sum; regenerate it with `atlas migrate hash`
// after adding a migration.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"travel-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		slog.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *dir, *atlasBin, dbCfg.BuildDSN()); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dir, atlasBin, dsn string) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return err
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: dsn,
	})
	if err != nil {
		return err
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
