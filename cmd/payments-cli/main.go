// payments-cli は決済APIの返金とカード検証をコマンドラインから呼び出す。
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"online-payments/internal/infrastructure/config"
)

// Version ビルド時に埋め込むバージョン
var Version = "dev"

func main() {
	if err := newRootCmd(config.LoadClient).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalOptions すべてのサブコマンドで共通のフラグ
type globalOptions struct {
	merchantID string
	transport  string
}

func newRootCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "payments-cli",
		Short:         "Online payments API client",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.merchantID, "merchant-id", "", "merchant id (default $PAYMENTS_MERCHANT_ID)")
	rootCmd.PersistentFlags().StringVar(&opts.transport, "transport", "", "transport: http or grpc (default $PAYMENTS_TRANSPORT)")

	rootCmd.AddCommand(refundsCmd(opts, loadConfig))
	rootCmd.AddCommand(verificationsCmd(opts, loadConfig))

	return rootCmd
}
