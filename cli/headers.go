package cli

import (
	"fmt"
	"net/http"

	"github.com/golden-vcr/easy-hmac/hmac"
	"github.com/spf13/cobra"
)

type headersOptions struct {
	signingOptions
	path string
	date string
}

func newHeadersCmd() *cobra.Command {
	opts := &headersOptions{}

	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Print the headers that authenticate a request",
		Long: `Print the headers that a sender must attach to a request in order to
authenticate it, one "Name: value" pair per line.

Examples:
  # Sign a JSON payload for POST /webhooks/github, dated now
  hmac-sign headers --path /webhooks/github -f payload.json

  # Reproduce a signature for a fixed date
  echo '{}' | hmac-sign headers --path /hook --date "Wed, 06 Dec 2023 21:06:04 GMT"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeaders(cmd, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.path, "path", "p", "", "Request path, e.g. /webhooks/github (required)")
	cmd.Flags().StringVar(&opts.date, "date", "", "HTTP date to sign with (default: now)")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func runHeaders(cmd *cobra.Command, opts *headersOptions) error {
	secret, err := opts.resolveSecret()
	if err != nil {
		return err
	}
	body, err := opts.readBody(cmd.InOrStdin())
	if err != nil {
		return err
	}

	req, err := http.NewRequest(opts.method, opts.path, nil)
	if err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	if opts.date != "" {
		req.Header.Set(hmac.HeaderDate, opts.date)
	}
	if _, err := hmac.NewSigner(secret).Sign(req, body); err != nil {
		return err
	}

	for _, name := range []string{hmac.HeaderDate, hmac.HeaderContentType, hmac.HeaderContentMD5, hmac.HeaderSignature} {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", http.CanonicalHeaderKey(name), req.Header.Get(name))
	}
	return nil
}
