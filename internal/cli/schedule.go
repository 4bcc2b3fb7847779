package cli

import "github.com/spf13/cobra"

func scheduleCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Print the weekly lesson timetable and expected income",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			printSchedule(cmd.OutOrStdout(), s.logic.Model().TrackO().Tutees())
			return nil
		},
	}
}
