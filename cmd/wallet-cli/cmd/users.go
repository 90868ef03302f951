package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wallet-client/internal/api"
	"wallet-client/pkg/cache"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users you can transfer to",
	RunE: func(cmd *cobra.Command, args []string) error {
		directory := api.NewCachedDirectory(newClient(), cache.NewMemoryCache(time.Minute, 5*time.Minute))
		users, err := directory.ListUsers(context.Background())
		if err != nil {
			return err
		}

		for _, u := range users {
			fmt.Printf("%-12s  %-20s  %s\n", u.ID, u.Name, u.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
