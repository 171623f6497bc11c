package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/tarantool/go-txflow/faucet"
	"github.com/tarantool/go-txflow/marshaller"
	"github.com/tarantool/go-txflow/token"
	"github.com/tarantool/go-txflow/txn"
)

// errNoJournal is returned by pending when handles are only kept in memory.
var errNoJournal = errors.New("no durable journal configured, set journal.endpoints") //nolint:gochecknoglobals

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "txflow",
		Short:         "Submit ledger transactions through a Tarantool wallet",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	cmd.SetOut(a.out)

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to the YAML configuration")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "development logging")
	cmd.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "",
		"write prometheus metrics to the file on exit")

	cmd.AddCommand(
		newInitCmd(a),
		newTakeCmd(a),
		newBalancesCmd(a),
		newStatusCmd(a),
		newPendingCmd(a),
	)

	return cmd
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Deploy a pair of faucets and print the minted tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := a.faucet(cmd)
			if err != nil {
				return err
			}

			pair, err := service.InitFaucets(cmd.Context())
			if err != nil {
				return err //nolint:wrapcheck
			}

			data, err := marshaller.NewTypedYamlMarshaller[token.Pair]().Marshal(pair)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = a.out.Write(data)

			return err //nolint:wrapcheck
		},
	}
}

func newTakeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "take <faucet-component>",
		Short: "Take free coins from a faucet into the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.faucet(cmd)
			if err != nil {
				return err
			}

			outcome, err := service.TakeFreeCoins(cmd.Context(), args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			printOutcome(a.out, outcome)

			return outcome.Err() //nolint:wrapcheck
		},
	}
}

func newBalancesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balances [resource...]",
		Short: "Show account balances, optionally only of the given resources",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client(cmd.Context())
			if err != nil {
				return err
			}

			balances, err := client.Balances(cmd.Context())
			if err != nil {
				return err //nolint:wrapcheck
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RESOURCE\tBALANCE")

			if len(args) == 0 {
				for _, balance := range balances {
					fmt.Fprintf(w, "%s\t%d\n", balance.Resource, balance.Amount)
				}

				return w.Flush() //nolint:wrapcheck
			}

			for _, resource := range args {
				tok := token.Token{Resource: resource, Component: "", Symbol: "", Balance: 0}

				for _, balance := range balances {
					if tok.Matches(balance.Resource) {
						tok = tok.WithBalance(balance.Amount)
						break
					}
				}

				fmt.Fprintf(w, "%s\t%d\n", tok.Resource, tok.Balance)
			}

			return w.Flush() //nolint:wrapcheck
		},
	}
}

func newStatusCmd(a *app) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "status <handle>",
		Short: "Show the status of a submitted transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client(cmd.Context())
			if err != nil {
				return err
			}

			handle := txn.Handle(args[0])

			if wait {
				outcome, err := client.Waiter().Wait(cmd.Context(), handle)
				if err != nil {
					return err //nolint:wrapcheck
				}

				printOutcome(a.out, outcome)

				return nil
			}

			outcome, terminal, err := client.Waiter().Check(cmd.Context(), handle)
			if err != nil {
				return err //nolint:wrapcheck
			}

			if !terminal {
				fmt.Fprintf(a.out, "%s\t%s\n", handle, txn.StatusPending)
				return nil
			}

			printOutcome(a.out, outcome)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "poll until the transaction is finalized")

	return cmd
}

func newPendingCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List transactions submitted without an observed outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.durable {
				return errNoJournal
			}

			entries, err := a.journal.Pending(cmd.Context())
			if err != nil {
				return err //nolint:wrapcheck
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "HANDLE\tSUBMITTED\tFINGERPRINT\tSTATUS")

			for _, entry := range entries {
				status := "-"

				if check {
					status, err = a.check(cmd, entry.Handle)
					if err != nil {
						return err
					}
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					entry.Handle, entry.SubmittedAt.Format(time.RFC3339), entry.Fingerprint, status)
			}

			return w.Flush() //nolint:wrapcheck
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "query the status of every pending transaction")

	return cmd
}

func (a *app) faucet(cmd *cobra.Command) (*faucet.Service, error) {
	cfg, err := a.config.FaucetConfig()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	client, err := a.client(cmd.Context())
	if err != nil {
		return nil, err
	}

	return faucet.New(client, cfg, a.logger) //nolint:wrapcheck
}

func (a *app) check(cmd *cobra.Command, handle txn.Handle) (string, error) {
	client, err := a.client(cmd.Context())
	if err != nil {
		return "", err
	}

	outcome, terminal, err := client.Waiter().Check(cmd.Context(), handle)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	if !terminal {
		return txn.StatusPending.String(), nil
	}

	return outcome.Kind().String(), nil
}

func printOutcome(out io.Writer, outcome txn.Outcome) {
	switch outcome.Kind() {
	case txn.OutcomeRejected:
		fmt.Fprintf(out, "%s\t%s\t%s\n", outcome.Handle(), outcome.Kind(), outcome.Reason())
	case txn.OutcomeAccepted:
		fmt.Fprintf(out, "%s\t%s\t%d changes\n", outcome.Handle(), outcome.Kind(), len(outcome.Changes()))
	default:
		fmt.Fprintf(out, "%s\t%s\n", outcome.Handle(), outcome.Kind())
	}
}
