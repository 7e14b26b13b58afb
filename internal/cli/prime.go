package cli

import (
	"fmt"

	"github.com/Davincible/galois/internal/validation"
	"github.com/Davincible/galois/pkg/gf"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewPrimeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prime",
		Short: "Primality utilities used by checked field construction",
	}

	cmd.AddCommand(
		newPrimeCheckCommand(),
		newPrimeFindCommand(),
	)

	return cmd
}

func newPrimeCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <n>",
		Short: "Check a number for primality by trial division",
		Example: `  galois prime check 9973
  galois prime check 0x3E5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := validation.ParseCharacteristic(args[0])
			if err != nil {
				return err
			}

			if !gf.IsPrime(n) {
				color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "%d is not prime\n", n)
				return fmt.Errorf("%d is not prime", n)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%d is prime\n", n)
			return nil
		},
	}
}

func newPrimeFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <max>",
		Short: "Find the largest prime below a limit",
		Long: `Find the largest prime strictly below max, the generator selection rule
of the checked prime field. max == 2 returns 2 itself; this boundary
convention is deliberate.`,
		Example: `  galois prime find 10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			max, err := validation.ParseCharacteristic(args[0])
			if err != nil {
				return err
			}

			p := gf.FindPrime(max)
			if p == 0 {
				return fmt.Errorf("no prime below %d", max)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", p)
			return nil
		},
	}
}
