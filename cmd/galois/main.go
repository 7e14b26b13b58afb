package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Davincible/galois/internal/cli"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "galois",
		Short: "Finite-field arithmetic over GF(p) and GF(2^8)",
		Long: `Galois provides finite-field arithmetic primitives over three field
representations: a prime field with a fixed generator, a prime field with
validated characteristic and derived generator, and the binary extension
field GF(2^8) used by Reed-Solomon style error-correcting codes.

All fields precompute discrete-log/antilog lookup tables at construction
and evaluate the six operations (add, sub, mul, div, pow, inv) on top of
them. Division by zero returns the zero element by field convention.`,
		Version:      fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		cli.NewCalcCommand(),
		cli.NewTableCommand(),
		cli.NewInfoCommand(),
		cli.NewPrimeCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
