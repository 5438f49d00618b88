// Package cli wires the cobra commands to the application services.
package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/prsizer/internal/domain/model"
)

// version is stamped at release time via
// -ldflags "-X github.com/ericfisherdev/prsizer/internal/cli.version=v1.2.3".
var version = "0.1.0"

// Exit codes. CI jobs branch on these.
const (
	ExitSuccess     = 0
	ExitPRError     = 1 // A PR failed to process; its labels are untouched.
	ExitConfigError = 2 // Usage or configuration error, nothing was processed.
	ExitAuthError   = 3 // Missing or rejected GitHub credentials.
)

// errMissingToken aborts commands that need GitHub write access.
var errMissingToken = errors.New("github token not configured (set PRSIZER_GITHUB_TOKEN)")

var (
	flagRepo        string
	flagVerbose     bool
	flagStatsSource string
	flagPatchFile   string
	flagGitDir      string
	flagRemote      string
)

var rootCmd = &cobra.Command{
	Use:   "prsizer",
	Short: "PR size labeler",
	Long: "prsizer classifies a pull request by its change size (lines added plus\n" +
		"lines removed) and converges its labels so it carries exactly one size\n" +
		"label, replacing any stale one.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Run executes the root command and returns a process exit code.
func Run() int {
	rootCmd.PersistentFlags().StringVar(&flagRepo, "repo", "", "repository as owner/repo (defaults to PRSIZER_REPO)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagStatsSource, "stats-source", "github",
		"diff statistics source: github, git, or patch")
	rootCmd.PersistentFlags().StringVar(&flagPatchFile, "patch-file", "", "unified diff file (stats-source=patch)")
	rootCmd.PersistentFlags().StringVar(&flagGitDir, "git-dir", "", "local clone directory (stats-source=git)")
	rootCmd.PersistentFlags().StringVar(&flagRemote, "remote", "origin", "git remote carrying pull refs (stats-source=git)")

	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("prsizer failed", "error", err)
		return exitCodeFor(err)
	}

	return ExitSuccess
}

// exitCodeFor maps the error taxonomy to process exit codes.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, errMissingToken):
		return ExitAuthError
	case errors.Is(err, model.ErrInvalidRange), errors.Is(err, errUsage):
		return ExitConfigError
	default:
		return ExitPRError
	}
}

// errUsage marks argument and flag validation failures.
var errUsage = errors.New("usage error")
