package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/atyhamos/tp/internal/usecase/query"
)

func queryCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:     "query <jsonpath>",
		Short:   "Evaluate a JSONPath expression against the data file",
		Example: `  tracko query '$.tutees[*].name'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.Close()

			doc, err := os.ReadFile(s.store.Path())
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("no data file at %s yet (run a command that changes the roster first)", s.store.Path())
			}
			if err != nil {
				return err
			}

			v, err := query.Run(doc, args[0])
			if err != nil {
				return err
			}
			text, err := query.Format(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
