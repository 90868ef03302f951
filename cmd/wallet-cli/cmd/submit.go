package cmd

import (
	"context"
	"fmt"

	"wallet-client/internal/flow"
	"wallet-client/pkg/errno"
)

// driveFlow walks a prepared flow through PIN capture, submission and
// result display. On a server rejection the draft is kept and the user may
// retry, re-entering the PIN; the old one is already wiped.
func driveFlow(ctx context.Context, f *flow.Flow) error {
	for {
		entry, err := promptSecret()
		if err != nil {
			_ = f.Cancel()
			return err
		}

		result, err := f.Confirm(ctx, entry)
		if err != nil {
			_, msg := errno.Decode(err)
			fmt.Printf("Transaction failed: %s\n", msg)
			if f.State() == flow.StateFailed && confirmYes("Retry with a new PIN?") {
				if retryErr := f.Retry(); retryErr == nil {
					continue
				}
			}
			_ = f.Cancel()
			return err
		}

		printResult(result)
		return nil
	}
}

func printResult(result *flow.Result) {
	fmt.Println(result.Message)
	if result.Receipt != nil {
		fmt.Printf("Transaction ID: %s\n", result.Receipt.TransactionID)
		fmt.Printf("Fee:            %s\n", result.Receipt.Fee.String())
		fmt.Printf("Total deducted: %s\n", result.Receipt.TotalDeducted.String())
	}
	if result.Snapshot != nil {
		fmt.Printf("New balance:    %s %s\n", result.Snapshot.Balance.String(), result.Snapshot.Currency)
	}
	if len(result.Recent) > 0 {
		fmt.Printf("Latest transaction: %s %s (%s)\n",
			result.Recent[0].Type, result.Recent[0].Amount.String(), result.Recent[0].Status)
	}
}
