package migrate

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"

	"salon-booking/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

//go:embed migrations/*.sql migrations/atlas.sum
var migrationFiles embed.FS

// Migrations exposes the embedded migration directory (SQL files plus
// atlas.sum) rooted at the directory itself.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// Apply runs pending migrations against dsn with the atlas CLI found at
// atlasBin (or on PATH when empty).
func Apply(ctx context.Context, dsn, atlasBin string, logger *slog.Logger) error {
	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(Migrations()))
	if err != nil {
		return errs.Wrap(err, "prepare migration working dir")
	}
	defer wd.Close()

	if atlasBin == "" {
		atlasBin = "atlas"
	}
	client, err := atlasexec.NewClient(wd.Path(), atlasBin)
	if err != nil {
		return errs.Wrap(err, "create atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DirURL: "file://migrations",
	})
	if err != nil {
		return errs.Wrap(err, "apply migrations")
	}

	logger.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
