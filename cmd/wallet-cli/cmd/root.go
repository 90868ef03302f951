package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wallet-client/internal/api"
	"wallet-client/pkg/config"
	"wallet-client/pkg/logger"
)

var (
	flagAPIURL string
	flagToken  string
)

var rootCmd = &cobra.Command{
	Use:   "wallet-cli",
	Short: "Command-line client for the wallet service",
	Long: `wallet-cli talks to the remote Wallet Service: check your balance,
add money, transfer to another user and browse your transaction history.
Money movements are confirmed with your 6-digit PIN, which is read with
terminal echo disabled and never stored.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initRuntime)
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Wallet Service base URL (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "bearer token from a prior login (default WALLET_API_TOKEN)")
}

func initRuntime() {
	config.Init()
	logger.Init(config.Global.App.Env)
}

// newClient builds the Wallet Service client from flags and config.
func newClient() *api.Client {
	baseURL := config.Global.API.BaseURL
	if flagAPIURL != "" {
		baseURL = flagAPIURL
	}
	token := config.Global.API.Token
	if flagToken != "" {
		token = flagToken
	}
	return api.New(baseURL, token, config.Global.API.Timeout, logger.Log)
}
