package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/atyhamos/tp/internal/ui/tui"
)

type globalOpts struct {
	workspace string
	debug     bool
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	cmd := &cobra.Command{
		Use:          "tracko",
		Short:        "Track-O, a tuition manager for private tutors",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			return tui.Run(tui.Deps{
				Logic:         s.logic,
				WorkspaceRoot: s.root,
				Logger:        s.log,
				Debug:         s.debug,
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .tracko/logs/tracko.log")

	cmd.AddCommand(
		execCmd(opts),
		listCmd(opts),
		scheduleCmd(opts),
		queryCmd(opts),
		initCmd(opts),
		versionCmd(),
	)
	return cmd
}
