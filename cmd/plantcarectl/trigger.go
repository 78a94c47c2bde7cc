package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const checkTasksPath = "/api/cron/check-tasks"

type triggerOptions struct {
	baseURL string
	secret  string
	timeout time.Duration
}

func newTriggerCmd() *cobra.Command {
	opts := triggerOptions{}

	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Call the cron endpoint of a running server",
		Long: `Calls GET /api/cron/check-tasks with the cron secret as a bearer token.
The secret defaults to the CRON_SECRET environment variable.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.secret == "" {
				opts.secret = os.Getenv("CRON_SECRET")
			}

			body, err := trigger(cmd.Context(), http.DefaultClient, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), body)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "base URL of the plantcare server")
	cmd.Flags().StringVar(&opts.secret, "secret", "", "cron secret (default $CRON_SECRET)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 5*time.Minute, "request timeout")

	return cmd
}

// trigger calls the cron endpoint and returns the response body. Non-200 responses are errors.
func trigger(ctx context.Context, client *http.Client, opts triggerOptions) (string, error) {
	if opts.secret == "" {
		return "", errors.New("cron secret is required")
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	url := strings.TrimRight(opts.baseURL, "/") + checkTasksPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+opts.secret)

	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "call cron endpoint")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("cron endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return strings.TrimSpace(string(body)), nil
}
