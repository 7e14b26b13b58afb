package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// InfoResult is the JSON output shape of the info command.
type InfoResult struct {
	Field     string `json:"field"`
	Order     uint16 `json:"order"`
	Generator uint16 `json:"generator"`
}

func NewInfoCommand() *cobra.Command {
	defField, defChar := defaultFieldSettings()

	var (
		fieldKind      string
		characteristic uint16
		outputJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the parameters of a field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := newArith(fieldKind, characteristic)
			if err != nil {
				return err
			}

			if outputJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(InfoResult{
					Field:     fieldKind,
					Order:     field.Order(),
					Generator: field.Generator(),
				})
			}

			out := cmd.OutOrStdout()
			label := color.New(color.FgCyan)
			label.Fprint(out, "field:     ")
			fmt.Fprintln(out, fieldKind)
			label.Fprint(out, "order:     ")
			fmt.Fprintln(out, field.Order())
			label.Fprint(out, "generator: ")
			fmt.Fprintln(out, field.Generator())
			return nil
		},
	}

	cmd.Flags().StringVarP(&fieldKind, "field", "f", defField, "Field representation (prime, checked, binary)")
	cmd.Flags().Uint16VarP(&characteristic, "char", "c", defChar, "Characteristic for prime fields")
	cmd.Flags().BoolVarP(&outputJSON, "json", "j", false, "Output in JSON format")

	return cmd
}
