package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atyhamos/tp/internal/usecase/command"
)

func execCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "exec",
		Short: "Run one Track-O command and print its feedback",
		Example: `  tracko exec "add n/John Doe p/98765432 l/p4 a/311, Clementi Ave 2"
  tracko exec "find John"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := s.logic.Execute(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Feedback)
			if res.ShowHelp {
				fmt.Fprintln(out)
				fmt.Fprintln(out, command.HelpText())
			}
			return nil
		},
	}
}
