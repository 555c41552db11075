package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/studymate/internal/adapters/vault"
	"github.com/bnema/studymate/internal/config"
	"github.com/bnema/studymate/internal/domain"
	"github.com/spf13/cobra"
)

const masterSecretBytes = 32

func newVaultCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Manage the master secret that protects stored keys",
	}

	cmd.AddCommand(newVaultInitCmd(app))

	return cmd
}

func newVaultInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a master secret and store it in the secret store",
		Long:  "Generates a random master secret and stores it under " + config.MasterSecretEntry + " (pass first, file fallback). Replacing an existing secret makes every stored key unreadable.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			_, err := app.secretStore.Get(ctx, config.MasterSecretEntry)
			switch {
			case err == nil && !force:
				return fmt.Errorf("master secret already stored at %s; pass --force to replace it (stored keys become unreadable)", config.MasterSecretEntry)
			case err != nil && !errors.Is(err, domain.ErrSecretNotFound):
				return fmt.Errorf("check existing master secret: %w", err)
			}

			secret, err := vault.GenerateToken(masterSecretBytes)
			if err != nil {
				return fmt.Errorf("generate master secret: %w", err)
			}

			if err := app.secretStore.Put(ctx, config.MasterSecretEntry, secret); err != nil {
				return fmt.Errorf("store master secret: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Stored master secret at %s\n", config.MasterSecretEntry)
			if app.cfg.EncryptionKey != "" {
				_, _ = fmt.Fprintln(out, "Note: ENCRYPTION_KEY is set and takes precedence over the stored secret.")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing master secret")

	return cmd
}
