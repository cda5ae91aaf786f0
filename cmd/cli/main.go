package main

import (
	"os"

	"github.com/spf13/cobra"

	"walletrisk/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "walletrisk",
		Short:        "Heuristic risk scoring for Compound V2 wallets",
		SilenceUsage: true,
	}

	var walletsPath string
	var outputPath string
	scoreCmd := &cobra.Command{
		Use:   "score",
		Short: "Score a CSV of wallet addresses and write a wallet_id,score table",
		RunE: func(command *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			return handler.RiskReportHandler.RunFromFiles(command.Context(), walletsPath, outputPath)
		},
	}
	scoreCmd.Flags().StringVar(&walletsPath, "wallets", "wallets.csv", "input CSV of wallet addresses")
	scoreCmd.Flags().StringVar(&outputPath, "out", "wallet_risk_scores.csv", "output CSV path")

	var port int
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scoring API over HTTP",
		RunE: func(command *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			return handler.StartApi(port)
		},
	}
	serveCmd.Flags().IntVar(&port, "port", 3009, "port to listen on")

	rootCmd.AddCommand(scoreCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
