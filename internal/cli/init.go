package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atyhamos/tp/internal/infra/fsworkspace"
	"github.com/atyhamos/tp/internal/usecase"
)

func initCmd(opts *globalOpts) *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create tracko.yaml and the data directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := path
			if strings.TrimSpace(root) == "" {
				root = opts.workspace
			}
			if strings.TrimSpace(root) == "" {
				root = "."
			}
			abs, err := resolveWorkspaceRoot(root)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(abs, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Workspace initialized at %s\n", abs)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Directory to initialize (default: --workspace or current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
