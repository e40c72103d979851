// Package account handles the account number conversion command.
package account

import (
	"github.com/spf13/cobra"

	"fjacquet/camt-import/cmd/root"
	"fjacquet/camt-import/internal/iban"
)

// Cmd represents the account command.
var Cmd = &cobra.Command{
	Use:   "account <nban>",
	Short: "Convert a Belgian account number to its IBAN and BIC",
	Long: `Validate the checksum of a Belgian national bank account number (NBAN)
and print the derived IBAN together with the BIC of the operating bank.

Example: camt-import account 340-1549215-66`,
	Args: cobra.ExactArgs(1),
	Run:  accountFunc,
}

func accountFunc(cmd *cobra.Command, args []string) {
	result, bic, err := iban.Convert(args[0])
	if err != nil {
		root.Log.Fatalf("Invalid account number: %v", err)
	}
	if bic == "" {
		root.Log.WithField("iban", result).Warn("No BIC known for this bank code")
		cmd.Println(result)
		return
	}
	cmd.Printf("%s %s\n", result, bic)
}
