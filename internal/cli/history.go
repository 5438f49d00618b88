package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	sqliteadapter "github.com/ericfisherdev/prsizer/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/prsizer/internal/config"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent relabel records from the audit trail",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagHistoryLimit <= 0 {
			return fmt.Errorf("%w: --limit must be positive, got %d", errUsage, flagHistoryLimit)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		repo := flagRepo
		if repo == "" {
			repo = cfg.Repo
		}

		db, err := sqliteadapter.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Migrate(); err != nil {
			return err
		}

		records, err := sqliteadapter.NewHistoryRepo(db).ListRecent(cmd.Context(), repo, flagHistoryLimit)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no relabel records")
			return nil
		}

		for _, rec := range records {
			label := rec.Label
			if label == "" {
				label = "(none)"
			}
			line := fmt.Sprintf("%s  %s#%d  size=%d  label=%s",
				rec.AppliedAt.Format("2006-01-02 15:04:05"), rec.RepoFullName, rec.PRNumber, rec.ChangeSize, label)
			if rec.Added != "" {
				line += "  +" + rec.Added
			}
			if len(rec.Removed) > 0 {
				line += "  -" + strings.Join(rec.Removed, " -")
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "maximum number of records to show")
}
