package main

import (
	"github.com/spf13/cobra"

	"online-payments/internal/infrastructure/config"
	"online-payments/pkg/client"
	"online-payments/pkg/currency"
	"online-payments/pkg/marshal"
	"online-payments/pkg/params"
)

func verificationsCmd(opts *globalOptions, loadConfig func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verifications",
		Short: "Verify cards and look up verifications",
	}
	cmd.AddCommand(verificationsCreateCmd(opts, loadConfig))
	cmd.AddCommand(verificationsGetCmd(opts, loadConfig))
	cmd.AddCommand(verificationsGetByIDCmd(opts, loadConfig))
	return cmd
}

func verificationsCreateCmd(opts *globalOptions, loadConfig func() (*config.Config, error)) *cobra.Command {
	var requestID, currencyCode, orderNumber string
	var card cardOptions
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Verify a card without moving funds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := params.Verification{
				Merchant:            cliMerchant(),
				MerchantOrderNumber: optional(orderNumber),
				PaymentMethodType: marshal.Value(params.VerificationPaymentMethodType{
					Card: marshal.Value(params.VerificationCard{
						AccountNumber: marshal.Value(card.accountNumber),
						Expiry:        card.expiry(),
					}),
				}),
			}
			if currencyCode != "" {
				c, err := currency.NewCode(currencyCode)
				if err != nil {
					return err
				}
				v.Currency = marshal.Value(c)
			}

			a, err := newApp(opts, loadConfig)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			var raw *client.Response
			if _, err := a.client.Verifications.Create(cmd.Context(), client.VerificationCreateParams{
				MerchantID:   a.merchantID,
				RequestID:    requestIDOrNew(requestID),
				Verification: v,
			}, client.WithResponseInto(&raw)); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().StringVar(&requestID, "request-id", "", "idempotency key (default: a new UUID)")
	cmd.Flags().StringVar(&currencyCode, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&orderNumber, "order-number", "", "merchant order number")
	cmd.Flags().StringVar(&card.accountNumber, "account-number", "", "card number")
	cmd.Flags().IntVar(&card.expiryMonth, "expiry-month", 0, "card expiry month")
	cmd.Flags().IntVar(&card.expiryYear, "expiry-year", 0, "card expiry year")
	_ = cmd.MarkFlagRequired("account-number")
	return cmd
}

func verificationsGetCmd(opts *globalOptions, loadConfig func() (*config.Config, error)) *cobra.Command {
	var requestID, requestIdentifier string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up a verification by the request id it was created with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, loadConfig)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			var raw *client.Response
			if _, err := a.client.Verifications.Get(cmd.Context(), client.VerificationGetParams{
				MerchantID:        a.merchantID,
				RequestID:         requestIDOrNew(requestID),
				RequestIdentifier: requestIdentifier,
			}, client.WithResponseInto(&raw)); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().StringVar(&requestID, "request-id", "", "request id of this lookup (default: a new UUID)")
	cmd.Flags().StringVar(&requestIdentifier, "request-identifier", "", "request id used when the verification was created")
	_ = cmd.MarkFlagRequired("request-identifier")
	return cmd
}

func verificationsGetByIDCmd(opts *globalOptions, loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "get-by-id [transaction-id]",
		Short: "Look up a verification by transaction id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, loadConfig)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			var raw *client.Response
			if _, err := a.client.Verifications.GetByID(cmd.Context(), args[0], client.VerificationGetByIDParams{
				MerchantID: a.merchantID,
			}, client.WithResponseInto(&raw)); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
}
