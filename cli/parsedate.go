package cli

import (
	"fmt"

	"github.com/golden-vcr/easy-hmac/httpdate"
	"github.com/spf13/cobra"
)

func newParseDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-date DATE",
		Short: "Print the Unix time for an HTTP date",
		Long: `Print the number of seconds since the Unix epoch for a date in any of the
three formats accepted in a Date header.

Examples:
  hmac-sign parse-date "Sun, 06 Nov 1994 08:49:37 GMT"
  hmac-sign parse-date "Sunday, 06-Nov-94 08:49:37 GMT"
  hmac-sign parse-date "Sun Nov  6 08:49:37 1994"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := httpdate.Parse(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", ts)
			return nil
		},
	}
}
