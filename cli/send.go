package cli

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golden-vcr/easy-hmac/hmac"
	"github.com/spf13/cobra"
)

type sendOptions struct {
	signingOptions
	url     string
	timeout time.Duration
}

func newSendCmd() *cobra.Command {
	opts := &sendOptions{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Sign a payload and send it",
		Long: `Sign a payload and send it to a URL, then print the response status and body.

Examples:
  hmac-sign send --url http://localhost:5000/webhooks/github -f payload.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.url, "url", "u", "", "URL to send the request to (required)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Request timeout")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func runSend(cmd *cobra.Command, opts *sendOptions) error {
	secret, err := opts.resolveSecret()
	if err != nil {
		return err
	}
	body, err := opts.readBody(cmd.InOrStdin())
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(cmd.Context(), opts.method, opts.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	client := &http.Client{
		Transport: hmac.NewTransport(nil, hmac.NewSigner(secret)),
		Timeout:   opts.timeout,
	}
	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", res.Status)
	if _, err := io.Copy(cmd.OutOrStdout(), res.Body); err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if res.StatusCode >= 400 {
		return fmt.Errorf("server responded with %s", res.Status)
	}
	return nil
}
