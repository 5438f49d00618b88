package cli

import (
	"fmt"
	"log/slog"

	githubadapter "github.com/ericfisherdev/prsizer/internal/adapter/driven/github"
	"github.com/ericfisherdev/prsizer/internal/adapter/driven/gitcli"
	"github.com/ericfisherdev/prsizer/internal/adapter/driven/patchfile"
	sqliteadapter "github.com/ericfisherdev/prsizer/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/prsizer/internal/application"
	"github.com/ericfisherdev/prsizer/internal/config"
	"github.com/ericfisherdev/prsizer/internal/domain/model"
	"github.com/ericfisherdev/prsizer/internal/domain/port/driven"
)

// runtime bundles everything a labeling command needs. close releases the
// history database; it is safe to call when no database was opened.
type runtime struct {
	repo    string
	service *application.LabelService
	close   func()
}

// newRuntime loads configuration, validates the range specs, and wires the
// adapters behind a LabelService. Range validation happens here, before any
// PR is touched. withHistory opens the audit database; dry runs and checks
// skip it.
func newRuntime(dryRun, withHistory bool) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	repo := flagRepo
	if repo == "" {
		repo = cfg.Repo
	}
	if repo == "" {
		return nil, fmt.Errorf("%w: no repository given (use --repo or PRSIZER_REPO)", errUsage)
	}

	sizes, err := model.NewSizeClass(cfg.Ranges)
	if err != nil {
		return nil, err
	}

	if !dryRun && !cfg.HasGitHubToken() {
		return nil, errMissingToken
	}
	ghClient := githubadapter.NewClient(cfg.GitHubToken)

	var stats driven.DiffStatsProvider
	switch flagStatsSource {
	case "github":
		stats = ghClient
	case "git":
		stats = gitcli.NewProvider(flagGitDir, flagRemote)
	case "patch":
		if flagPatchFile == "" {
			return nil, fmt.Errorf("%w: --patch-file is required with --stats-source=patch", errUsage)
		}
		stats = patchfile.NewProvider(flagPatchFile)
	default:
		return nil, fmt.Errorf("%w: unknown stats source %q", errUsage, flagStatsSource)
	}

	var history driven.HistoryStore
	closeDB := func() {}
	if withHistory {
		db, err := sqliteadapter.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
		history = sqliteadapter.NewHistoryRepo(db)
		closeDB = func() {
			if err := db.Close(); err != nil {
				slog.Error("error closing database", "error", err)
			}
		}
	}

	svc := application.NewLabelService(stats, ghClient, history, sizes, cfg.Ranges.LabelPrefix, dryRun)

	return &runtime{repo: repo, service: svc, close: closeDB}, nil
}
