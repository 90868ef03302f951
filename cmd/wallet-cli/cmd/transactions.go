package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wallet-client/internal/api"
	"wallet-client/internal/model"
)

var (
	txRecent    bool
	txPage      int
	txLimit     int
	txStatus    string
	txStartDate string
	txEndDate   string
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Browse your transaction history",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		ctx := context.Background()

		if txRecent {
			txs, err := client.RecentTransactions(ctx)
			if err != nil {
				return err
			}
			printTransactions(txs)
			return nil
		}

		page, err := client.Transactions(ctx, api.ListQuery{
			Page:      txPage,
			Limit:     txLimit,
			Status:    txStatus,
			StartDate: txStartDate,
			EndDate:   txEndDate,
		})
		if err != nil {
			return err
		}

		printTransactions(page.Data)
		fmt.Printf("Page %d/%d (%d total)\n", page.Page, (page.Total+page.Limit-1)/page.Limit, page.Total)
		return nil
	},
}

func printTransactions(txs []model.Transaction) {
	if len(txs) == 0 {
		fmt.Println("No transactions.")
		return
	}
	for _, tx := range txs {
		line := fmt.Sprintf("%s  %-6s  %12s", tx.CreatedAt.Format(time.RFC3339), tx.Type, tx.Amount.String())
		if tx.ToUserID != "" {
			line += "  -> " + tx.ToUserID
		}
		line += "  [" + tx.Status + "]"
		fmt.Println(line)
	}
}

func init() {
	rootCmd.AddCommand(transactionsCmd)
	transactionsCmd.Flags().BoolVarP(&txRecent, "recent", "r", false, "show the ten most recent transactions")
	transactionsCmd.Flags().IntVarP(&txPage, "page", "p", 1, "page number")
	transactionsCmd.Flags().IntVarP(&txLimit, "limit", "l", 10, "page size")
	transactionsCmd.Flags().StringVarP(&txStatus, "status", "s", "", "filter by status (success, pending, failed)")
	transactionsCmd.Flags().StringVar(&txStartDate, "from", "", "filter from date (RFC3339)")
	transactionsCmd.Flags().StringVar(&txEndDate, "to", "", "filter to date (RFC3339)")
}
