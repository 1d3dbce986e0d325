package main

import (
	"context"
	"fmt"
	"time"

	"erpgate/internal/errors"
	"erpgate/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRootCmd(run appRunner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "erpgatectl",
		Short: "Administer the erpgate credential store",
		// Errors are printed once by cobra; usage only for argument mistakes.
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newMigrateCmd(run), newCredentialsCmd(run))

	return rootCmd
}

func newMigrateCmd(run appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the gateway tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), func(ctx context.Context, deps adminDeps) error {
				if err := postgres.Migrate(ctx, deps.DB); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrated")

				return nil
			})
		},
	}
}

func newCredentialsCmd(run appRunner) *cobra.Command {
	credentialsCmd := &cobra.Command{
		Use:   "credentials",
		Short: "Manage issued credentials",
	}

	credentialsCmd.AddCommand(newRevokeCmd(run), newPurgeCmd(run))

	return credentialsCmd
}

func newRevokeCmd(run appRunner) *cobra.Command {
	return &cobra.Command{
		Use:     "revoke <credential-id>",
		Short:   "Delete a credential with its origins, endpoints and scopes",
		Example: `  erpgatectl credentials revoke 0b6f1f2e-5d8c-4a55-9a37-3f4f3d7c2a10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid credential id %q", args[0])
			}

			return run(cmd.Context(), func(ctx context.Context, deps adminDeps) error {
				if err := deps.CredentialUC.Revoke(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "revoked %s\n", id)

				return nil
			})
		},
	}
}

func newPurgeCmd(run appRunner) *cobra.Command {
	var olderThan time.Duration

	purgeCmd := &cobra.Command{
		Use:     "purge",
		Short:   "Delete credentials that expired before now minus --older-than",
		Example: `  erpgatectl credentials purge --older-than 720h`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if olderThan < 0 {
				return errors.New("--older-than must not be negative")
			}
			before := time.Now().Add(-olderThan)

			return run(cmd.Context(), func(ctx context.Context, deps adminDeps) error {
				count, err := deps.CredentialUC.PurgeExpired(ctx, before)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d credential(s) expired before %s\n", count, before.UTC().Format(time.RFC3339))

				return nil
			})
		},
	}

	purgeCmd.Flags().DurationVar(&olderThan, "older-than", 0, "only purge credentials expired at least this long ago")

	return purgeCmd
}
