package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wallet-client/internal/flow"
	"wallet-client/pkg/logger"
)

var topupAmount string

var topupCmd = &cobra.Command{
	Use:   "topup",
	Short: "Add money to your wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := flow.ParseAmount(topupAmount)
		if err != nil {
			return err
		}

		f := flow.New(flow.KindAddFunds, newClient(), logger.Log)
		if err := f.SetAmount(amount); err != nil {
			return err
		}
		if err := f.Proceed(); err != nil {
			return err
		}

		fmt.Printf("Adding %s to your wallet.\n", amount.String())
		return driveFlow(context.Background(), f)
	},
}

func init() {
	rootCmd.AddCommand(topupCmd)
	topupCmd.Flags().StringVarP(&topupAmount, "amount", "a", "", "amount to add")
	_ = topupCmd.MarkFlagRequired("amount")
}
