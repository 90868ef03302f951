package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wallet-client/pkg/errno"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show your wallet balance",
	Long: `Show your wallet balance. The Wallet Service re-verifies your PIN on
every balance read, so you will be prompted for it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := promptSecret()
		if err != nil {
			return err
		}
		defer entry.Wipe()

		pin, err := entry.Reveal()
		if err != nil {
			return err
		}

		snap, err := newClient().Wallet(context.Background(), pin)
		entry.Wipe()
		if err != nil {
			_, msg := errno.Decode(err)
			fmt.Println(msg)
			return err
		}

		fmt.Printf("Balance: %s %s\n", snap.Balance.String(), snap.Currency)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
