package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wallet-client/internal/api"
	"wallet-client/internal/flow"
	"wallet-client/internal/model"
	"wallet-client/pkg/cache"
	"wallet-client/pkg/errno"
	"wallet-client/pkg/logger"
)

var (
	transferTo     string
	transferAmount string
)

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer money to another user",
	Long: `Transfer money to another user. The recipient may be given as a user ID
or an email address; emails are resolved against the user directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := flow.ParseAmount(transferAmount)
		if err != nil {
			return err
		}

		client := newClient()
		ctx := context.Background()

		recipient, err := resolveRecipient(ctx, client, transferTo)
		if err != nil {
			return err
		}

		f := flow.New(flow.KindTransfer, client, logger.Log)
		if err := f.SetAmount(amount); err != nil {
			return err
		}
		if err := f.SetRecipient(recipient.ID); err != nil {
			return err
		}
		if err := f.Proceed(); err != nil {
			return err
		}

		fmt.Printf("Transferring %s to %s <%s>.\n", amount.String(), recipient.Name, recipient.Email)
		return driveFlow(ctx, f)
	},
}

// resolveRecipient matches a user ID or email against the directory.
func resolveRecipient(ctx context.Context, client *api.Client, to string) (model.User, error) {
	if to == "" {
		return model.User{}, errno.ErrInvalidInput.WithMessage("Please select a recipient")
	}

	directory := api.NewCachedDirectory(client, cache.NewMemoryCache(time.Minute, 5*time.Minute))
	users, err := directory.ListUsers(ctx)
	if err != nil {
		return model.User{}, err
	}

	for _, u := range users {
		if u.ID == to || strings.EqualFold(u.Email, to) {
			return u, nil
		}
	}
	return model.User{}, errno.ErrInvalidInput.WithMessage(fmt.Sprintf("No user matching %q", to))
}

func init() {
	rootCmd.AddCommand(transferCmd)
	transferCmd.Flags().StringVarP(&transferTo, "to", "t", "", "recipient user ID or email")
	transferCmd.Flags().StringVarP(&transferAmount, "amount", "a", "", "amount to transfer")
	_ = transferCmd.MarkFlagRequired("to")
	_ = transferCmd.MarkFlagRequired("amount")
}
