package main

import (
	"errors"

	"github.com/spf13/cobra"

	"online-payments/internal/infrastructure/config"
	"online-payments/pkg/client"
	"online-payments/pkg/currency"
	"online-payments/pkg/marshal"
	"online-payments/pkg/params"
)

func refundsCmd(opts *globalOptions, loadConfig func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refunds",
		Short: "Create and look up refunds",
	}
	cmd.AddCommand(refundsCreateCmd(opts, loadConfig))
	cmd.AddCommand(refundsGetCmd(opts, loadConfig))
	cmd.AddCommand(refundsGetByIDCmd(opts, loadConfig))
	return cmd
}

// refundCreateOptions 返金作成のフラグ
type refundCreateOptions struct {
	requestID   string
	amount      string
	currency    string
	reference   string
	orderNumber string
	card        cardOptions
}

// refund フラグから返金リクエストを組み立てる
func (o *refundCreateOptions) refund() (params.Refund, error) {
	if (o.card.accountNumber == "") == (o.reference == "") {
		return params.Refund{}, errors.New("exactly one of --account-number or --reference is required")
	}

	code := currency.USD
	r := params.Refund{
		Merchant:            cliMerchant(),
		MerchantOrderNumber: optional(o.orderNumber),
	}
	if o.currency != "" {
		c, err := currency.NewCode(o.currency)
		if err != nil {
			return params.Refund{}, err
		}
		code = c
		r.Currency = marshal.Value(c)
	}

	amount, err := minorUnits(o.amount, code)
	if err != nil {
		return params.Refund{}, err
	}
	r.Amount = marshal.Value(amount)

	if o.reference != "" {
		r.PaymentMethodType = marshal.Value(params.RefundPaymentMethodType{
			TransactionReference: marshal.Value(params.TransactionReference{
				TransactionReferenceID: marshal.Value(o.reference),
			}),
		})
		return r, nil
	}
	r.PaymentMethodType = marshal.Value(params.RefundPaymentMethodType{
		Card: marshal.Value(params.RefundCard{
			AccountNumber: marshal.Value(o.card.accountNumber),
			Expiry:        o.card.expiry(),
		}),
	})
	return r, nil
}

func refundsCreateCmd(opts *globalOptions, loadConfig func() (*config.Config, error)) *cobra.Command {
	o := &refundCreateOptions{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a refund",
		Long: `Create a refund against a card or a previous transaction.

Examples:
  payments-cli refunds create --amount 12.34 --currency USD --account-number 4111111111111111
  payments-cli refunds create --amount 5 --reference 7f3c2c1e-...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			refund, err := o.refund()
			if err != nil {
				return err
			}
			a, err := newApp(opts, loadConfig)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			var raw *client.Response
			if _, err := a.client.Refunds.Create(cmd.Context(), client.RefundCreateParams{
				MerchantID: a.merchantID,
				RequestID:  requestIDOrNew(o.requestID),
				Refund:     refund,
			}, client.WithResponseInto(&raw)); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}

	cmd.Flags().StringVar(&o.requestID, "request-id", "", "idempotency key (default: a new UUID)")
	cmd.Flags().StringVar(&o.amount, "amount", "", "amount in major units, e.g. 12.34")
	cmd.Flags().StringVar(&o.currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&o.reference, "reference", "", "transaction id of the payment to refund")
	cmd.Flags().StringVar(&o.orderNumber, "order-number", "", "merchant order number")
	cmd.Flags().StringVar(&o.card.accountNumber, "account-number", "", "card number for a standalone refund")
	cmd.Flags().IntVar(&o.card.expiryMonth, "expiry-month", 0, "card expiry month")
	cmd.Flags().IntVar(&o.card.expiryYear, "expiry-year", 0, "card expiry year")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func refundsGetCmd(opts *globalOptions, loadConfig func() (*config.Config, error)) *cobra.Command {
	var requestID, requestIdentifier string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up a refund by the request id it was created with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, loadConfig)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			var raw *client.Response
			if _, err := a.client.Refunds.Get(cmd.Context(), client.RefundGetParams{
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
	cmd.Flags().StringVar(&requestIdentifier, "request-identifier", "", "request id used when the refund was created")
	_ = cmd.MarkFlagRequired("request-identifier")
	return cmd
}

func refundsGetByIDCmd(opts *globalOptions, loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "get-by-id [transaction-id]",
		Short: "Look up a refund by transaction id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, loadConfig)
			if err != nil {
				return err
			}
			defer func() { _ = a.close() }()

			var raw *client.Response
			if _, err := a.client.Refunds.GetByID(cmd.Context(), args[0], client.RefundGetByIDParams{
				MerchantID: a.merchantID,
			}, client.WithResponseInto(&raw)); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), raw)
		},
	}
}
