package cli

import "github.com/spf13/cobra"

func listCmd(opts *globalOpts) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List every tutee in the roster",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			return printTutees(cmd.OutOrStdout(), s.logic.Model().TrackO().Tutees(), format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
