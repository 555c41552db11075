package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	keysrender "github.com/bnema/studymate/internal/adapters/render/keys"
	"github.com/bnema/studymate/internal/application"
	"github.com/bnema/studymate/internal/domain"
	"github.com/spf13/cobra"
)

func newKeyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage encrypted AI provider keys",
	}

	cmd.AddCommand(
		newKeyAddCmd(app),
		newKeyListCmd(app),
		newKeyUpdateCmd(app),
		newKeyRemoveCmd(app),
		newKeyPreviewCmd(app),
		newKeyTestCmd(app),
	)

	return cmd
}

func newKeyAddCmd(app *app) *cobra.Command {
	var (
		providerName string
		name         string
		apiKey       string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Encrypt and store a provider key",
		Long:  "Encrypts and stores a provider key. Without --key the key is read from the terminal without echo, or from stdin when piped.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, err := domain.ParseProvider(providerName)
			if err != nil {
				return err
			}

			svc, err := app.Services(cmd.Context())
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("key") {
				apiKey, err = readSecret(cmd, fmt.Sprintf("%s API key: ", provider.Label()))
				if err != nil {
					return err
				}
			}

			summary, err := svc.credentials.AddKey(cmd.Context(), application.AddKeyCommand{
				Owner:    app.cfg.Owner,
				Provider: provider,
				Name:     name,
				APIKey:   apiKey,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s key %q (%s)\n", summary.Provider.Label(), summary.Name, summary.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&providerName, "provider", "", "Provider: openai, anthropic or google")
	cmd.Flags().StringVar(&name, "name", "", "Display name for the key")
	cmd.Flags().StringVar(&apiKey, "key", "", "API key (prompted when omitted)")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newKeyListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored keys without revealing them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.Services(cmd.Context())
			if err != nil {
				return err
			}

			keys, err := svc.credentials.ListKeys(cmd.Context(), app.cfg.Owner)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(keys)
			}

			rendered, err := app.keyRenderer(keys, keysrender.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render keys: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print keys as JSON")

	return cmd
}

func newKeyUpdateCmd(app *app) *cobra.Command {
	var (
		id     string
		name   string
		apiKey string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename a key or replace its value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			update := application.UpdateKeyCommand{Owner: app.cfg.Owner, ID: domain.CredentialID(id)}
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("key") {
				update.APIKey = &apiKey
			}
			if update.Name == nil && update.APIKey == nil {
				return errors.New("nothing to update: pass --name and/or --key")
			}

			svc, err := app.Services(cmd.Context())
			if err != nil {
				return err
			}

			summary, err := svc.credentials.UpdateKey(cmd.Context(), update)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s key %q (%s)\n", summary.Provider.Label(), summary.Name, summary.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Key ID")
	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&apiKey, "key", "", "New API key")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newKeyRemoveCmd(app *app) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Delete a stored key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.Services(cmd.Context())
			if err != nil {
				return err
			}

			if err := svc.credentials.RemoveKey(cmd.Context(), app.cfg.Owner, domain.CredentialID(id)); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed key %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Key ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newKeyPreviewCmd(app *app) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show a masked version of a stored key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.Services(cmd.Context())
			if err != nil {
				return err
			}

			preview, err := svc.credentials.PreviewKey(cmd.Context(), app.cfg.Owner, domain.CredentialID(id))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", preview.Name, preview.Provider.Label(), preview.MaskedKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Key ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newKeyTestCmd(app *app) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Check a stored key against its provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := app.Services(cmd.Context())
			if err != nil {
				return err
			}

			var result application.KeyTestResult
			err = runWithSpinner(cmd, "Testing API key...", func(ctx context.Context) error {
				var testErr error
				result, testErr = svc.credentials.TestKey(ctx, app.cfg.Owner, domain.CredentialID(id))
				return testErr
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			if !result.Valid {
				return errors.New("api key test failed")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Key ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
