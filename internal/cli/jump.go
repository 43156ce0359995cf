package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var jumpCmd = &cobra.Command{
	Use:   "jump [file]",
	Short: "Open the test of a code file, or the code of a test file",
	Long: `Open the counterpart of the given file. The file may also be passed in
the GOTOTEST_ACTIVE_FILE environment variable; with neither, nothing happens.

When two candidates are about equally close to the file, you are asked to
pick one (see prompt.mode). The file is opened with open.command, or its
path is printed when no command is configured.

Examples:
  gototest jump src/foo.ts
  GOTOTEST_ACTIVE_FILE=src/__tests__/foo.test.ts gototest jump`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJump,
}

func init() {
	rootCmd.AddCommand(jumpCmd)
}

func runJump(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	ws := newWorkspace(GetRootDir(), args)

	uc, err := newResolveUseCase(cfg, os.Stdin, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if cfg.History.Enabled && ws.Root() != "" {
		st, err := openHistory(ws.Root())
		if err != nil {
			logger.Warn("history disabled", slog.String("error", err.Error()))
		} else {
			defer st.Close()
			uc.SetRecorder(st)
		}
	}

	opened, err := uc.Run(cmd.Context(), ws)
	if err != nil {
		return err
	}
	if opened != "" {
		logger.Info("opened", slog.String("file", opened))
	}
	return nil
}
