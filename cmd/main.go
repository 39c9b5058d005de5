// Package main provides the CLI entrypoint for the tax simulator.
// It wires subcommands, loads configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"taxsim/internal/config"
	"taxsim/pkg/logger"
	"taxsim/pkg/serrors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:           "taxsim",
		Short:         "Japanese and Australian tax and inheritance simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	// values already in the environment win over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Println("could not load .env file:", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	ctx := context.Background()

	logger.Setup(cfg.Environment)
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Fatal(ctx, "invalid log level", zap.String("level", cfg.LogLevel), zap.Error(err))
	}

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		incomeCommand(cfg),
		inheritanceCommand(cfg),
		cgtCommand(cfg),
		tablesCommand(cfg),
		askCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, describeError(err)) //nolint: forbidigo
		os.Exit(1) //nolint: gocritic
	}
}

// describeError renders a command failure as a single line. Input problems
// are warnings, everything else is an error.
func describeError(err error) string {
	prefix := "error"
	switch serrors.KindOf(err) {
	case serrors.ErrMissingInput, serrors.ErrDomain, serrors.ErrBadRequest:
		prefix = "warning"
	}

	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		return prefix + ": " + se.Message()
	}

	return prefix + ": " + err.Error()
}
