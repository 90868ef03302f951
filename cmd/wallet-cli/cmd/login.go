package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wallet-client/pkg/errno"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and obtain an API token",
	Long: `Log in to the Wallet Service. The password is read with terminal echo
disabled. On success the bearer token is printed; export it as
WALLET_API_TOKEN (or pass --token) for subsequent commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readHidden("Password: ")
		if err != nil {
			return err
		}

		session, err := newClient().Login(context.Background(), loginEmail, password)
		if err != nil {
			_, msg := errno.Decode(err)
			fmt.Println(msg)
			return err
		}

		fmt.Printf("Logged in as %s <%s>\n", session.User.Name, session.User.Email)
		fmt.Printf("export WALLET_API_TOKEN=%s\n", session.Token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	_ = loginCmd.MarkFlagRequired("email")
}
