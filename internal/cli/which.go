package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gototest/internal/adapter/similarity"
	"gototest/internal/domain"
)

var whichJSON bool

var whichCmd = &cobra.Command{
	Use:   "which [file]",
	Short: "Show the counterpart of a file without opening it",
	Long: `Resolve the counterpart of the given file and print every existing
candidate with its similarity score. Nothing is opened and nobody is asked.

Examples:
  gototest which src/foo.ts
  gototest which src/__tests__/foo.test.ts --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWhich,
}

func init() {
	rootCmd.AddCommand(whichCmd)
	whichCmd.Flags().BoolVar(&whichJSON, "json", false, "output as JSON")
}

type whichResult struct {
	domain.Resolution
	Direction string          `json:"direction"`
	Ratings   []domain.Rating `json:"ratings"`
}

func runWhich(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	ws := newWorkspace(GetRootDir(), args)
	if ws.ActiveFile() == "" {
		return fmt.Errorf("no file given")
	}

	uc, err := newResolveUseCase(cfg, nil, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	res, err := uc.Resolve(ws.ActiveFile())
	if err != nil {
		return err
	}
	ratings, _ := similarity.FindBestMatch(res.Opened, res.Candidates)

	out := cmd.OutOrStdout()
	if whichJSON {
		data, err := json.MarshalIndent(whichResult{
			Resolution: res,
			Direction:  res.Direction.String(),
			Ratings:    ratings,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "%s -> %s (%s)\n", res.Opened, res.Target, res.Direction)
	for _, r := range ratings {
		marker := " "
		for _, o := range res.Options {
			if o == r.Target {
				marker = "*"
			}
		}
		fmt.Fprintf(out, " %s %.3f %s\n", marker, r.Score, r.Target)
	}
	if res.Ambiguous() {
		fmt.Fprintf(out, "%d candidates are within %.2f of each other; jump will ask.\n", len(res.Options), similarity.DefaultTolerance)
	}
	return nil
}
