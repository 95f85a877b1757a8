package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "bankbot",
	Short:        "Rule-based banking assistant",
	Long:         "bankbot answers banking queries (balance, cards, loans, transfers) by keyword matching and per-domain slot filling.",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP chat API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
		if path, _ := cmd.Flags().GetString("phrasebook"); path != "" {
			cfg.Phrasebook = path
		}
		return runServe(cfg)
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant on the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		account, _ := cmd.Flags().GetString("account")
		return runREPL(cfg, account)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (overrides config)")
	serveCmd.Flags().String("phrasebook", "", "phrasebook overlay file (overrides config)")
	chatCmd.Flags().String("account", "", "account number to log in as")
	rootCmd.AddCommand(serveCmd, chatCmd)
}
