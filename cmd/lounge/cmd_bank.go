package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect or reset the 21 bankroll",
}

var bankShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			balance, ok, err := a.bank().LoadBalance(ctx)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(a.out, "No saved balance (%s backend). New players start with %d.\n",
					a.cfg.Bank.Backend, a.cfg.Blackjack.StartingCash)
				return nil
			}
			fmt.Fprintf(a.out, "Balance: %d (%s backend)\n", balance, a.cfg.Bank.Backend)
			return nil
		})
	},
}

var bankResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := a.clearBank(ctx); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Balance cleared.")
			return nil
		})
	},
}
