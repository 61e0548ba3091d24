package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/scheduling/internal/entity"
	"github.com/samandr77/microservices/scheduling/internal/service"
)

type opsService interface {
	UnlockAccount(ctx context.Context, email string) error
	ListLockedAccounts(ctx context.Context, now time.Time) ([]entity.LockedAccount, error)
	ReassignCodes(ctx context.Context) (service.CodesReport, error)
}

const emailFlag = "email"

func newRootCommand(s opsService, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "opsctl",
		Short:        "Operator commands for the scheduling service",
		SilenceUsage: true,
	}

	root.SetOut(out)
	root.AddCommand(
		newUnlockAccountCommand(s),
		newLockedAccountsCommand(s),
		newReassignCodesCommand(s),
	)

	return root
}

func newUnlockAccountCommand(s opsService) *cobra.Command {
	flags := map[string]cobraflags.Flag{
		emailFlag: &cobraflags.StringFlag{
			Name:  emailFlag,
			Value: "",
			Usage: "Email of the account to unlock (required)",
		},
	}

	cmd := &cobra.Command{
		Use:   "unlock-account",
		Short: "Clear the lock and failed login attempts of an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email := flags[emailFlag].GetString()
			if email == "" {
				return fmt.Errorf("--%s is required", emailFlag)
			}

			err := s.UnlockAccount(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("unlock account: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "account %s unlocked\n", entity.NormalizeEmail(email))

			return nil
		},
	}

	cobraflags.RegisterMap(cmd, flags)

	return cmd
}

func newLockedAccountsCommand(s opsService) *cobra.Command {
	return &cobra.Command{
		Use:   "locked-accounts",
		Short: "Print accounts whose lock has not expired yet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := s.ListLockedAccounts(cmd.Context(), time.Now())
			if err != nil {
				return fmt.Errorf("list locked accounts: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), accounts)
		},
	}
}

func newReassignCodesCommand(s opsService) *cobra.Command {
	return &cobra.Command{
		Use:   "reassign-codes",
		Short: "Recompute area and duty codes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := s.ReassignCodes(cmd.Context())
			if err != nil {
				return fmt.Errorf("reassign codes: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), report)
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
