package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"taxsim/internal/config"

	"github.com/spf13/cobra"
)

func askCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Asks a free-text tax question",
		Long: "Asks a free-text question about Japanese or Australian tax and inheritance.\n" +
			"The API key defaults to OPENAI_API_KEY.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			apiKey, _ := cmd.Flags().GetString("api-key")

			answer, err := newAdvisory(cfg, nil).Ask(ctx, apiKey, strings.Join(args, " "))
			if err != nil {
				return err //nolint: wrapcheck
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().String("api-key", "", "Completion API key (overrides config)")

	return cmd
}
