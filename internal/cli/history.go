package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent jumps",
	Long: `List the most recent jumps recorded in .gototest/history.db.
Jumps are only recorded when history.enabled is true.

Examples:
  gototest history
  gototest history --limit 5
  gototest history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of jumps (default from config)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded jumps")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := openHistory(GetRootDir())
	if err != nil {
		return err
	}
	defer st.Close()

	out := cmd.OutOrStdout()
	if historyClear {
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Fprintln(out, "History cleared.")
		return nil
	}

	limit := cfg.History.Limit
	if historyLimit > 0 {
		limit = historyLimit
	}

	jumps, err := st.Recent(limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(jumps) == 0 {
		fmt.Fprintln(out, "No jumps recorded.")
		if !cfg.History.Enabled {
			fmt.Fprintln(out, "Set history.enabled: true to record jumps.")
		}
		return nil
	}

	for _, j := range jumps {
		fmt.Fprintf(out, "%s  %-4s  %s -> %s\n", j.At.Format("2006-01-02 15:04:05"), j.Direction, j.From, j.To)
	}
	return nil
}
